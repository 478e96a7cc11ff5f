package arlatin

// DiffResult represents the difference between two extractions of the same
// document, used to re-transliterate only what changed.
type DiffResult struct {
	// Added contains text nodes that are new (not in the previous version).
	Added []TextNode

	// Removed contains text nodes that no longer appear.
	Removed []TextNode

	// Unchanged contains text nodes present in both versions.
	Unchanged []TextNode

	// Modified contains pairs of nodes occupying the same document
	// position whose text changed.
	Modified []ModifiedNode
}

// ModifiedNode represents a text node whose content changed in place.
type ModifiedNode struct {
	Old TextNode
	New TextNode
}

// DiffStats contains summary statistics for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Unchanged int
	Modified  int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Unchanged: len(d.Unchanged),
		Modified:  len(d.Modified),
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Modified) > 0
}

// NeedsTransliteration returns the nodes whose results cannot be reused:
// new nodes plus the new side of modified nodes.
func (d *DiffResult) NeedsTransliteration() []TextNode {
	result := make([]TextNode, 0, len(d.Added)+len(d.Modified))
	result = append(result, d.Added...)
	for _, m := range d.Modified {
		result = append(result, m.New)
	}
	return result
}

// DiffNodes compares two sets of extracted text nodes by content hash.
func DiffNodes(oldNodes, newNodes []TextNode) *DiffResult {
	result := &DiffResult{}

	oldByHash := make(map[string]TextNode)
	newByHash := make(map[string]TextNode)

	for _, node := range oldNodes {
		oldByHash[node.Hash] = node
	}
	for _, node := range newNodes {
		newByHash[node.Hash] = node
	}

	for hash, oldNode := range oldByHash {
		if _, exists := newByHash[hash]; exists {
			result.Unchanged = append(result.Unchanged, oldNode)
		} else {
			result.Removed = append(result.Removed, oldNode)
		}
	}

	for hash, newNode := range newByHash {
		if _, exists := oldByHash[hash]; !exists {
			result.Added = append(result.Added, newNode)
		}
	}

	return result
}

// DiffNodesWithPosition additionally pairs removed and added nodes that
// share a node ID, reporting them as in-place modifications.
func DiffNodesWithPosition(oldNodes, newNodes []TextNode) *DiffResult {
	result := DiffNodes(oldNodes, newNodes)

	if len(result.Added) == 0 || len(result.Removed) == 0 {
		return result
	}

	matchedAdded := make(map[int]bool)
	matchedRemoved := make(map[int]bool)

	for ri, removed := range result.Removed {
		for ai, added := range result.Added {
			if matchedAdded[ai] {
				continue
			}
			if removed.ID != "" && removed.ID == added.ID {
				result.Modified = append(result.Modified, ModifiedNode{
					Old: removed,
					New: added,
				})
				matchedAdded[ai] = true
				matchedRemoved[ri] = true
				break
			}
		}
	}

	remainingAdded := make([]TextNode, 0, len(result.Added))
	for i, node := range result.Added {
		if !matchedAdded[i] {
			remainingAdded = append(remainingAdded, node)
		}
	}
	result.Added = remainingAdded

	remainingRemoved := make([]TextNode, 0, len(result.Removed))
	for i, node := range result.Removed {
		if !matchedRemoved[i] {
			remainingRemoved = append(remainingRemoved, node)
		}
	}
	result.Removed = remainingRemoved

	return result
}
