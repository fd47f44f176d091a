// Package sanitizer provides the value-normalizing functions behind
// transform rules.
//
// Every function is pure: it takes the current field value and returns the
// normalized one. Transform rules never reject a value, so functions that
// cannot interpret their input return it unchanged.
//
// # Case and spacing
//
//	sanitizer.UpperFirst("naMe")               // "NaMe"
//	sanitizer.ToCamelCase("user name")         // "userName"
//	sanitizer.ReplaceSpaces("a b c", "-")      // "a-b-c"
//	sanitizer.RemoveSpaces(" a b ")            // "ab"
//
// # Numbers
//
//	sanitizer.Money("1000")                    // "1,000.00"
//	sanitizer.Round("3.4", sanitizer.RoundUp)  // "4"
//
// # Markup
//
//	sanitizer.EscapeHTML(`<b>"x"</b>`)         // "&lt;b&gt;&#34;x&#34;&lt;/b&gt;"
//	sanitizer.UnescapeHTML("&lt;b&gt;")        // "<b>"
package sanitizer
