// Package pathnorm canonicalizes local paths, network shares and internet
// addresses into a single slash-separated form.
package pathnorm

import (
	"os"
	"path"
	"regexp"
	"strings"
)

// Options controls the shape of the normalized path.
type Options struct {
	// Windows returns backslash separators instead of slashes.
	Windows bool
	// ReferencePath is joined in front of relative input paths. It is
	// expected to be absolute and is normalized itself before joining.
	ReferencePath string
	// ConsiderBlanks wraps the result in double quotes when it contains blanks.
	ConsiderBlanks bool
	// ExpandEnvVars resolves $VAR, ${VAR} and %VAR% references.
	ExpandEnvVars bool
	// Mask doubles every backslash separator. Only applies with Windows.
	Mask bool
}

// DefaultOptions returns the options used when a caller does not specify any:
// environment expansion and masking enabled, everything else off.
func DefaultOptions() Options {
	return Options{
		ExpandEnvVars: true,
		Mask:          true,
	}
}

var (
	schemePattern  = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.\-]+):/+`)
	drivePattern   = regexp.MustCompile(`^[A-Za-z]:(/|$)`)
	percentPattern = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)
	dollarPattern  = regexp.MustCompile(`\$(\w+|\{[^}]*\})`)
)

// Normalize returns the canonical form of p. An empty p yields an empty result.
//
// Mixed and redundant separators collapse to single slashes and up-level
// references are resolved. A leading double separator marks a network share
// and is preserved, as is a URL scheme such as "http://".
func Normalize(p string, opts Options) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = unquote(p)

	if opts.ExpandEnvVars {
		p = expandEnv(p)
	}
	p = strings.ReplaceAll(p, `\`, "/")

	var prefix, rest string
	switch {
	case schemePattern.MatchString(p):
		m := schemePattern.FindStringSubmatch(p)
		prefix = m[1] + "://"
		rest = p[len(m[0]):]
	case strings.HasPrefix(p, "//"):
		prefix = "//"
		rest = strings.TrimLeft(p, "/")
	default:
		rest = p
		if !isAbs(rest) && opts.ReferencePath != "" {
			ref := Normalize(opts.ReferencePath, Options{ExpandEnvVars: opts.ExpandEnvVars})
			rest = unquote(ref) + "/" + rest
		}
	}

	out := prefix + clean(rest, prefix != "")

	if opts.Windows {
		out = strings.ReplaceAll(out, "/", `\`)
		if opts.Mask {
			out = strings.ReplaceAll(out, `\`, `\\`)
		}
	}
	if opts.ConsiderBlanks && strings.Contains(out, " ") {
		out = `"` + out + `"`
	}
	return out
}

// clean resolves "." and ".." elements. Inside a share or URL the host
// segment is never popped.
func clean(rest string, rooted bool) string {
	if rest == "" {
		return ""
	}
	if rooted {
		rest = strings.TrimLeft(rest, "/")
		host, tail, _ := strings.Cut(rest, "/")
		tail = strings.TrimPrefix(path.Clean("/"+tail), "/")
		if tail == "" {
			return host
		}
		return host + "/" + tail
	}
	cleaned := path.Clean(rest)
	// path.Clean reduces "C:/" to "C:"; keep the drive root.
	if len(cleaned) == 2 && cleaned[1] == ':' && drivePattern.MatchString(rest) && len(rest) > 2 {
		cleaned += "/"
	}
	return cleaned
}

func isAbs(p string) bool {
	return strings.HasPrefix(p, "/") || drivePattern.MatchString(p)
}

// IsAbs reports whether p is rooted: a slash or backslash prefix, a drive
// letter or a URL scheme.
func IsAbs(p string) bool {
	p = strings.ReplaceAll(unquote(strings.TrimSpace(p)), `\`, "/")
	return isAbs(p) || schemePattern.MatchString(p)
}

func unquote(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		return strings.TrimSpace(p[1 : len(p)-1])
	}
	return p
}

// expandEnv resolves ${VAR}, $VAR and %VAR%. References to unset variables
// are kept byte for byte.
func expandEnv(p string) string {
	p = dollarPattern.ReplaceAllStringFunc(p, func(m string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(m[1:], "{"), "}")
		if v, ok := os.LookupEnv(name); ok && name != "" {
			return v
		}
		return m
	})
	return percentPattern.ReplaceAllStringFunc(p, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return m
	})
}
