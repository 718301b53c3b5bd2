package catalog

import (
	"bytes"
	"testing"
)

func TestWriteXML(t *testing.T) {
	catalog := &Catalog{
		Upgrades: []Upgrade{
			{
				From:      "T1",
				IsRelease: true,
				Scripts: []Script{
					{Path: "a.sql", Comment: "from T1 (ID 1)"},
					{Path: "b.sql", Comment: "from T1 (ID 1)"},
					{Path: "c.sql", Comment: "from T2 (ID 2), T1 (ID 1)"},
				},
			},
			{
				From:      "T2",
				IsRelease: false,
				Scripts: []Script{
					{Path: "d.sql", Comment: "from T2 (ID 2)"},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteXML(&buf, catalog); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}

	want := "" +
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
		"<upgrades>\n" +
		"\t<upgrade from=\"T1\" release=\"true\">\n" +
		"\t\t<!-- from T1 (ID 1) -->\n" +
		"\t\t<script>a.sql</script>\n" +
		"\t\t<script>b.sql</script>\n" +
		"\n" +
		"\t\t<!-- from T2 (ID 2), T1 (ID 1) -->\n" +
		"\t\t<script>c.sql</script>\n" +
		"\t</upgrade>\n" +
		"\n" +
		"\t<upgrade from=\"T2\" release=\"false\">\n" +
		"\t\t<!-- from T2 (ID 2) -->\n" +
		"\t\t<script>d.sql</script>\n" +
		"\t</upgrade>\n" +
		"</upgrades>\n"

	if buf.String() != want {
		t.Errorf("WriteXML() =\n%s\nwant\n%s", buf.String(), want)
	}
}
