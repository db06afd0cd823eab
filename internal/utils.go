package internal

func findLCP(key1 []byte, key2 []byte) int {
	var i int
	for ; i < min(len(key1), len(key2)); i++ {
		if key1[i] != key2[i] {
			break
		}
	}

	return i
}

// mergePrefix builds the compressed path of a node after it swallowed
// the edge byte and prefix of its only remaining descendant.
func mergePrefix(parentPrefix []byte, edge byte, childPrefix []byte) []byte {
	merged := make([]byte, 0, len(parentPrefix)+1+len(childPrefix))
	merged = append(merged, parentPrefix...)
	merged = append(merged, edge)
	merged = append(merged, childPrefix...)
	return merged
}
