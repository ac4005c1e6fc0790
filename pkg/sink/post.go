package sink

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/canvascast/pkg/syndicate"
)

// RenderPost renders an item as a markdown file: a YAML front-matter block
// followed by the raw item text.
//
// Cross-references are batch-scoped: context_for_this lists the item's
// in-neighbors and further_thinking its out-neighbors, but a neighbor only
// produces a link when it is itself part of the batch (otherwise there is no
// slug to link to, and the entry is silently skipped). Either list is
// omitted entirely when empty. hrefPrefix is prepended to generated link
// targets (e.g. "/t/").
func RenderPost(item syndicate.Item, batch syndicate.Batch, slugs map[string]string, hrefPrefix string, date time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: \"%s\"\n", escapeYAML(Title(item.Text)))
	fmt.Fprintf(&b, "date: %s\n", date.Format("2006-01-02"))

	writeLinkList(&b, "context_for_this", item.InNeighborIDs, batch, slugs, hrefPrefix)
	writeLinkList(&b, "further_thinking", item.OutNeighborIDs, batch, slugs, hrefPrefix)

	b.WriteString("---\n\n")
	b.WriteString(item.Text)
	return b.String()
}

// writeLinkList appends one front-matter link list. Nothing is written when
// no neighbor resolves within the batch.
func writeLinkList(b *strings.Builder, key string, neighborIDs []string, batch syndicate.Batch, slugs map[string]string, hrefPrefix string) {
	type link struct {
		text string
		href string
	}
	var links []link
	for _, id := range neighborIDs {
		slug, ok := slugs[id]
		if !ok {
			continue
		}
		neighbor, ok := batch[id]
		if !ok {
			continue
		}
		links = append(links, link{
			text: Title(neighbor.Text),
			href: hrefPrefix + Filename(slug, id),
		})
	}
	if len(links) == 0 {
		return
	}

	fmt.Fprintf(b, "%s:\n", key)
	for _, l := range links {
		fmt.Fprintf(b, "  - link_text: \"%s\"\n", escapeYAML(l.text))
		fmt.Fprintf(b, "    href: \"%s\"\n", l.href)
	}
}

// CommitMessage builds the change description for a batch. Single-item
// batches name the slug and quote a short text preview; larger batches just
// carry the count.
func CommitMessage(batch syndicate.Batch, slugs map[string]string) string {
	if len(batch) == 1 {
		for id, item := range batch {
			return fmt.Sprintf("Adding microblog `%s`\n\n%s", slugs[id], preview(item.Text))
		}
	}
	return fmt.Sprintf("Update microblogs (%d posts)", len(batch))
}
