package social

// DedupeBills drops repeated bill ids, keeping first occurrence order.
func DedupeBills(bills []FeedBill) []FeedBill {
	seen := make(map[string]struct{}, len(bills))
	out := make([]FeedBill, 0, len(bills))
	for _, b := range bills {
		if _, dup := seen[b.ID]; dup {
			continue
		}
		seen[b.ID] = struct{}{}
		out = append(out, b)
	}
	return out
}

// BuildFeed assembles the following feed: for each followee, in follow
// order, one "commented" entry then one "liked" entry, each with its
// bill list deduplicated.
func BuildFeed(names []string, commented, liked map[string][]FeedBill) []FeedEntry {
	feed := make([]FeedEntry, 0, 2*len(names))
	for _, name := range names {
		feed = append(feed,
			FeedEntry{UserName: name, Kind: "commented", Bills: DedupeBills(commented[name])},
			FeedEntry{UserName: name, Kind: "liked", Bills: DedupeBills(liked[name])},
		)
	}
	return feed
}
