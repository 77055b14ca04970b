package resources

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// TemplateVariable is a single {var} placeholder inside a URI template.
type TemplateVariable struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// ParseTemplateVariables returns variables in lexical order of appearance.
func ParseTemplateVariables(tmpl string) []TemplateVariable {
	vars := []TemplateVariable{}
	parts := strings.Split(tmpl, "{")

	for i := 1; i < len(parts); i++ {
		seg := parts[i]
		if idx := strings.Index(seg, "}"); idx != -1 {
			vars = append(vars, TemplateVariable{Name: seg[:idx], Required: true})
		}
	}

	return vars
}

// ExpandTemplate replaces placeholders with concrete, path-escaped values.
func ExpandTemplate(tmpl string, vars map[string]string) (string, error) {
	res := tmpl
	for k, v := range vars {
		res = strings.ReplaceAll(res, "{"+k+"}", url.PathEscape(v))
	}

	if strings.Contains(res, "{") {
		return "", fmt.Errorf("not all variables provided for template %s", tmpl)
	}

	return res, nil
}

/*
compileTemplate turns a URI template into an anchored pattern with one capture
group per variable. Variables never span a path separator.
*/
func compileTemplate(tmpl string) (*regexp.Regexp, []TemplateVariable, error) {
	vars := ParseTemplateVariables(tmpl)
	if len(vars) == 0 {
		return nil, nil, fmt.Errorf("template contains no variables")
	}

	pattern := regexp.QuoteMeta(tmpl)
	for _, v := range vars {
		pattern = strings.Replace(pattern, regexp.QuoteMeta("{"+v.Name+"}"), "([^/]+)", 1)
	}

	re, err := regexp.Compile("^" + pattern + "$")
	if err != nil {
		return nil, nil, err
	}

	return re, vars, nil
}

// matchTemplate extracts the percent-decoded variable values of uri.
func matchTemplate(tmpl, uri string) (map[string]string, error) {
	re, vars, err := compileTemplate(tmpl)
	if err != nil {
		return nil, err
	}

	m := re.FindStringSubmatch(uri)
	if m == nil {
		return nil, fmt.Errorf("uri does not match template")
	}

	out := map[string]string{}
	for i, v := range vars {
		value, err := url.PathUnescape(m[i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid escape in %s: %w", v.Name, err)
		}

		out[v.Name] = value
	}

	return out, nil
}
