package page

// BlockKind identifies one rendered element of a Document.
type BlockKind string

const (
	BlockTitle     BlockKind = "title"
	BlockSubheader BlockKind = "subheader"
	BlockText      BlockKind = "text"
	BlockAlert     BlockKind = "alert"
	BlockDivider   BlockKind = "divider"
	BlockCaption   BlockKind = "caption"
)

// Block is a single display directive.
type Block struct {
	Kind  BlockKind
	Text  string
	Alert AlertKind
}

// Document is a Surface that records directives in order. Templates walk
// Blocks to produce HTML. A Document is not safe for concurrent use; build a
// new one per request.
type Document struct {
	Meta   Meta
	Blocks []Block
}

var _ Surface = (*Document)(nil)

func (d *Document) SetMeta(m Meta) {
	d.Meta = m
}

func (d *Document) Title(text string) {
	d.add(Block{Kind: BlockTitle, Text: text})
}

func (d *Document) Subheader(text string) {
	d.add(Block{Kind: BlockSubheader, Text: text})
}

func (d *Document) Text(markdown string) {
	d.add(Block{Kind: BlockText, Text: markdown})
}

func (d *Document) Alert(kind AlertKind, text string) {
	d.add(Block{Kind: BlockAlert, Alert: kind, Text: text})
}

func (d *Document) Divider() {
	d.add(Block{Kind: BlockDivider})
}

func (d *Document) Caption(markdown string) {
	d.add(Block{Kind: BlockCaption, Text: markdown})
}

func (d *Document) add(b Block) {
	d.Blocks = append(d.Blocks, b)
}
