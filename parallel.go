package arlatin

import "sync"

// parallelThreshold is the minimum batch size for parallel cache lookups.
const parallelThreshold = 5

// ParallelCacheLookup performs cache lookups in parallel using goroutines.
// Returns a map of hash to cached result, and the nodes that missed
// (deduplicated, in original order).
func ParallelCacheLookup(cache Cache, nodes []TextNode, fingerprint string) (map[string]string, []TextNode) {
	if cache == nil || len(nodes) == 0 {
		return make(map[string]string), nodes
	}

	type lookupResult struct {
		hash  string
		value string
		found bool
	}

	// Deduplicate nodes by hash first
	uniqueNodes := make(map[string]TextNode)
	for _, node := range nodes {
		if _, exists := uniqueNodes[node.Hash]; !exists {
			uniqueNodes[node.Hash] = node
		}
	}

	results := make(chan lookupResult, len(uniqueNodes))
	var wg sync.WaitGroup

	for hash := range uniqueNodes {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			if val, ok := cache.Get(CacheKey(h, fingerprint)); ok {
				results <- lookupResult{hash: h, value: val, found: true}
			} else {
				results <- lookupResult{hash: h, found: false}
			}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	found := make(map[string]string)
	missedHashes := make(map[string]bool)

	for result := range results {
		if result.found {
			found[result.hash] = result.value
		} else {
			missedHashes[result.hash] = true
		}
	}

	// Build the miss slice preserving original order
	var misses []TextNode
	seenMisses := make(map[string]bool)
	for _, node := range nodes {
		if missedHashes[node.Hash] && !seenMisses[node.Hash] {
			misses = append(misses, node)
			seenMisses[node.Hash] = true
		}
	}

	return found, misses
}
