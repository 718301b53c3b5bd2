package catalog

import (
	"bufio"
	"fmt"
	"io"
)

// WriteXML renders catalog in the byte-exact upgrade-catalog format: a
// blank line between <upgrade> blocks, and a blank line between
// <!-- comment --> groups within an upgrade whenever the comment changes.
func WriteXML(w io.Writer, catalog *Catalog) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintln(bw, `<upgrades>`)

	for i, upgrade := range catalog.Upgrades {
		if i > 0 {
			fmt.Fprintln(bw)
		}

		fmt.Fprintf(bw, "\t<upgrade from=\"%s\" release=\"%t\">\n", upgrade.From, upgrade.IsRelease)

		lastComment := ""
		firstComment := true

		for _, script := range upgrade.Scripts {
			if script.Comment != lastComment {
				if !firstComment {
					fmt.Fprintln(bw)
				}

				firstComment = false
				lastComment = script.Comment

				fmt.Fprintf(bw, "\t\t<!-- %s -->\n", script.Comment)
			}

			fmt.Fprintf(bw, "\t\t<script>%s</script>\n", script.Path)
		}

		fmt.Fprintln(bw, "\t</upgrade>")
	}

	fmt.Fprintln(bw, `</upgrades>`)

	return bw.Flush()
}
