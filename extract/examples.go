package extract

import (
	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/bloom"
)

// CollectExampleURLs gathers the example-page URLs referenced by type
// records, deduplicated in first-seen order. The same example is linked
// from many type pages, so the set is tracked with a Bloom filter sized for
// the full corpus.
func CollectExampleURLs(records []swdoc.Record) []string {
	seen := bloom.NewFilter(1<<16, 0.001)

	var urls []string
	for _, rec := range records {
		t, ok := rec.(*swdoc.TypeRecord)
		if !ok {
			continue
		}
		for _, e := range t.Examples {
			if e.URL == "" || seen.Test(e.URL) {
				continue
			}
			seen.Add(e.URL)
			urls = append(urls, e.URL)
		}
	}
	return urls
}
