package signature

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/typedispatch/internal/ctxlog"
)

var closers = map[byte]byte{'(': ')', '{': '}', '[': ']'}

// Parse extracts the ordered parameter list from the first parenthesized
// group of a declaration. A declaration without such a group fails with
// ErrFormatting; an empty group yields an empty Signature.
func Parse(ctx context.Context, text string) (Signature, error) {
	ctx = ctxlog.With(ctx, "declaration", text)
	logger := ctxlog.FromContext(ctx)

	group, ok := firstGroup(text)
	if !ok {
		return nil, newError(ErrFormatting, text, "")
	}
	group = unwrapBraces(strings.TrimSpace(group))
	logger.Debug("Located parameter group.", "group", group)

	if group == "" {
		return Signature{}, nil
	}

	fragments := splitTopLevel(group)
	sig := make(Signature, 0, len(fragments))
	for _, fragment := range fragments {
		p, err := parseParam(fragment)
		if err != nil {
			return nil, err
		}
		sig = append(sig, p)
	}

	sig, err := Validate(ctx, sig)
	if err != nil {
		return nil, err
	}
	logger.Debug("Parsed signature.", "signature", sig.String(), "key", MergeTypeNames(sig))
	return sig, nil
}

// Validate checks a declared signature and resolves every parameter type to
// its type name. The input is not modified.
func Validate(ctx context.Context, sig Signature) (Signature, error) {
	resolved := make(Signature, len(sig))
	seen := make(map[string]struct{}, len(sig))

	for i, p := range sig {
		fragment := p.Name + " = " + p.Type
		name := strings.TrimSpace(p.Name)
		typeExpr := strings.TrimSpace(p.Type)

		if name == "" || typeExpr == "" {
			return nil, newError(ErrInvalidSignature, fragment, "both a name and a type are required")
		}
		if !hclsyntax.ValidIdentifier(name) {
			return nil, newError(ErrInvalidSignature, fragment, "parameter name is not a valid identifier")
		}
		if _, dup := seen[name]; dup {
			return nil, newError(ErrInvalidSignature, fragment, "duplicate parameter name")
		}
		seen[name] = struct{}{}

		typeName, err := resolveTypeName(ctx, typeExpr)
		if err != nil {
			return nil, newError(ErrInvalidSignature, fragment, err.Error())
		}
		if !ValidTypeName(typeName) {
			return nil, newError(ErrInvalidSignature, fragment, "type name is reserved")
		}
		resolved[i] = Param{Name: name, Type: typeName}
	}

	return resolved, nil
}

// parseParam splits one `name = Type` fragment on its first '='.
func parseParam(fragment string) (Param, error) {
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return Param{}, newError(ErrInvalidSignature, fragment, "empty parameter")
	}

	name, typeExpr, found := strings.Cut(trimmed, "=")
	if !found {
		if len(strings.Fields(trimmed)) == 1 {
			return Param{}, newError(ErrMissingType, trimmed, "")
		}
		return Param{}, newError(ErrInvalidSignature, trimmed, "expected `name = Type`")
	}

	name, typeExpr = strings.TrimSpace(name), strings.TrimSpace(typeExpr)
	if name == "" || typeExpr == "" {
		return Param{}, newError(ErrInvalidSignature, trimmed, "both a name and a type are required")
	}
	return Param{Name: name, Type: typeExpr}, nil
}

// firstGroup returns the contents of the first balanced parenthesized group.
func firstGroup(text string) (string, bool) {
	start := strings.IndexByte(text, '(')
	if start < 0 {
		return "", false
	}
	end, ok := matchClose(text, start)
	if !ok {
		return "", false
	}
	return text[start+1 : end], true
}

// matchClose returns the index of the bracket closing the one at open.
func matchClose(text string, open int) (int, bool) {
	var stack []byte
	for i := open; i < len(text); i++ {
		c := text[i]
		if closer, ok := closers[c]; ok {
			stack = append(stack, closer)
			continue
		}
		if c != ')' && c != '}' && c != ']' {
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return 0, false
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return i, true
		}
	}
	return 0, false
}

// unwrapBraces strips a destructuring `{ ... }` around the whole group.
func unwrapBraces(group string) string {
	if !strings.HasPrefix(group, "{") {
		return group
	}
	end, ok := matchClose(group, 0)
	if !ok || end != len(group)-1 {
		return group
	}
	return strings.TrimSpace(group[1:end])
}

// splitTopLevel splits on commas that are not nested inside brackets.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
