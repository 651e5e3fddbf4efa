// Package syndication generates RSS 0.91, RSS 2.0, Atom 1.0 and JSON Feed 1.1
// documents from an in-memory feed model.
//
// A feed is constructed for one concrete wire format, filled with items, and
// written once to a stream:
//
//	feed, err := syndication.New(syndication.Default, syndication.Options{
//		Title:       "Poynter E-Media Tidbits",
//		Link:        "http://www.poynter.org/column.asp?id=31",
//		Description: "A group weblog by the sharpest minds in online media.",
//		Language:    "en",
//	})
//	if err != nil {
//		...
//	}
//	err = feed.AddItem(syndication.Item{
//		Title:       "Hello",
//		Link:        "http://www.holovaty.com/test/",
//		Description: "Testing.",
//	})
//	...
//	err = feed.Write(f, "utf-8")
//
// A Feed is not safe for concurrent mutation; callers that add items from
// multiple goroutines must synchronize externally.
package syndication
