/* This file is part of quotecrawl, ©2020 Jörg Walter
 *  This software is licensed under the "GNU General Public License version 3" */

package libreport

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jwdev42/quotecrawl/libcrawl"
)

//Summary renders one row per fetched page and the record total.
func Summary(pages []libcrawl.PageStat) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "URL", "Records"})
	total := 0
	for i, p := range pages {
		t.AppendRow(table.Row{i + 1, p.URL, p.Records})
		total += p.Records
	}
	t.AppendFooter(table.Row{"", "Total", total})
	return t.Render()
}
