package respond

import "regexp"

// dsnPasswordPattern matches the credential section of a connection URL
// so driver errors can be logged without the password.
var dsnPasswordPattern = regexp.MustCompile(`://([^:/]+):([^@]+)@`)

// Sanitize returns the error message with credentials masked. Safe for
// logging; never sent to clients.
func Sanitize(err error) string {
	if err == nil {
		return ""
	}
	return dsnPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
