// SPDX-License-Identifier: MPL-2.0

package config

// Merge combines two configuration trees with recursive override semantics:
// when both sides define a key as a mapping the merge recurses, otherwise
// the higher-priority (right-hand) value replaces the left-hand value
// atomically. Scalars and lists are never concatenated. Neither input is
// mutated.
func Merge(base, override Tree) Tree {
	merged := copyTree(base)

	for key, value := range override {
		baseMap, baseOK := merged[key].(map[string]any)
		overrideMap, overrideOK := value.(map[string]any)

		if baseOK && overrideOK {
			merged[key] = Merge(baseMap, overrideMap)
			continue
		}
		merged[key] = copyValue(value)
	}

	return merged
}

// copyTree deep-copies a tree so merged results never alias their sources.
func copyTree(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return copyTree(tv)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
