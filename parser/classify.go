package parser

var specifiers = map[string]bool{
	"void":     true,
	"char":     true,
	"short":    true,
	"int":      true,
	"long":     true,
	"float":    true,
	"double":   true,
	"signed":   true,
	"unsigned": true,
}

// "restrict" is not listed here because it applies only to pointers; the
// declarator parser recognizes it directly.
var qualifiers = map[string]bool{
	"const":    true,
	"volatile": true,
}

var storageClasses = map[string]bool{
	"auto":     true,
	"register": true,
	"static":   true,
	"extern":   true,
	"typedef":  true,
}

func IsSpecifier(s string) bool    { return specifiers[s] }
func IsQualifier(s string) bool    { return qualifiers[s] }
func IsStorageClass(s string) bool { return storageClasses[s] }

// IsReserved reports whether s is a specifier, qualifier or storage class.
func IsReserved(s string) bool {
	return IsSpecifier(s) || IsQualifier(s) || IsStorageClass(s)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isHexDigit(c byte) bool {
	c = lower(c)
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// IsIntLiteral reports whether s is a valid C integer literal: decimal,
// octal (0 + octal digits), hexadecimal (0x/0X) or binary (0b/0B), each
// optionally followed by a suffix of up to two l/L and up to one u/U in any
// order.
func IsIntLiteral(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}

	// strip the length/unsigned suffix off the end
	end := len(s)
	ls, us := 0, 0
	for end > 0 {
		switch lower(s[end-1]) {
		case 'l':
			if ls++; ls > 2 {
				return false
			}
		case 'u':
			if us++; us > 1 {
				return false
			}
		default:
			goto done
		}
		end--
	}
done:
	body := s[:end]
	if body == "" {
		return false
	}

	if body[0] == '0' && len(body) > 1 {
		switch lower(body[1]) {
		case 'x':
			if len(body) < 3 {
				return false
			}
			for i := 2; i < len(body); i++ {
				if !isHexDigit(body[i]) {
					return false
				}
			}
		case 'b':
			if len(body) < 3 {
				return false
			}
			for i := 2; i < len(body); i++ {
				if body[i] != '0' && body[i] != '1' {
					return false
				}
			}
		default:
			for i := 1; i < len(body); i++ {
				if body[i] < '0' || body[i] > '7' {
					return false
				}
			}
		}
		return true
	}

	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return true
}
