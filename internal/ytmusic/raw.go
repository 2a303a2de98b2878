package ytmusic

// Every response from the upstream API decodes into a map[string]any tree
// with no fixed schema: keys come and go between page contexts and client
// builds. All access goes through dig, which treats missing keys, out-of-range
// indexes and wrong types as ordinary absences.

// dig walks v through a path of map keys (string) and array indexes (int),
// returning nil as soon as any step does not match the actual shape.
func dig(v any, keys ...any) any {
	cur := v
	for _, k := range keys {
		switch key := k.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = m[key]
		case int:
			a, ok := cur.([]any)
			if !ok || key < 0 || key >= len(a) {
				return nil
			}
			cur = a[key]
		default:
			return nil
		}
	}
	return cur
}

func digString(v any, keys ...any) string {
	s, _ := dig(v, keys...).(string)
	return s
}

func digMap(v any, keys ...any) map[string]any {
	m, _ := dig(v, keys...).(map[string]any)
	return m
}

func digList(v any, keys ...any) []any {
	l, _ := dig(v, keys...).([]any)
	return l
}
