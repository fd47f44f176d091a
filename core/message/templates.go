package message

// DefaultTemplate is used when neither an override nor a rule template exists.
const DefaultTemplate = "Something went wrong with this field"

// Placeholders recognised in templates. Each is replaced once.
const (
	PlaceholderField     = ":field"
	PlaceholderRuleValue = ":ruleValue"
	PlaceholderParameter = ":parameter"
)

var builtinTemplates = map[string]string{
	"required":  "The :field field is required",
	"int":       "The :field field can only contain whole numbers",
	"numeric":   "The :field field can only contain numbers",
	"decimal":   "The :field field can only contain decimal numbers",
	"alpha":     "The :field field can only contain letters",
	"alpha_num": "The :field field can only contain letters and numbers",
	"min":       "This value is too low",
	"max":       "This value is too high",
	"between":   "This value does not meet the requirements",
	"length":    "This value must be :parameter characters long",
	"minLength": "This value must be at least :parameter characters long",
	"maxLength": "This value cannot be longer than :parameter characters",
	"email":     "This is not a valid email address",
	"url":       "This is not a valid URL",
	"in":        "This value is not allowed",
	"not_in":    "This value is not allowed",
	"equal":     "The value must equal :parameter",
	"not_equal": "The value cannot equal :parameter",
	"exact":     "The value must be exactly :parameter",
	"day":       "This is not a valid day",
	"month":     "This is not a valid month",
	"year":      "This is not a valid year",
	"date":      "This is not a valid date",
	"contain":   "This value does not meet the requirements",
	"uuid":      "This is not a valid UUID",
	"image":     "This is not an image",
	"size":      "This file is too big",
	"mime":      "The file type is not allowed",
	"same":      "This does not match the :parameter field",
	"different": "This value cannot match the value from the :parameter field",
	"enable":    "The :parameter field must be valid first",
}
