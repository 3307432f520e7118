package layout

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/seatfinder/internal/boardingpass"
	"github.com/vk/seatfinder/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

const (
	rowBlock    = "row"
	columnBlock = "column"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: rowBlock},
		{Type: columnBlock},
	},
}

var segmentSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "symbols"},
		{Name: "lower"},
		{Name: "upper"},
	},
}

// Load reads the layout file at path. An empty path yields
// boardingpass.DefaultLayout.
func Load(ctx context.Context, path string) (boardingpass.Layout, error) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		logger.Debug("No layout file given, using the default layout.")
		return boardingpass.DefaultLayout, nil
	}

	logger.Debug("Reading layout file.", "path", path)
	src, err := os.ReadFile(path)
	if err != nil {
		return boardingpass.Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Parse(ctx, src, path)
}

// Parse decodes HCL source into a validated layout. filename is only used in
// diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (boardingpass.Layout, error) {
	logger := ctxlog.FromContext(ctx)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return boardingpass.Layout{}, fmt.Errorf("failed to parse layout %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return boardingpass.Layout{}, fmt.Errorf("invalid layout %s: %w", filename, diags)
	}

	out := boardingpass.DefaultLayout
	seen := make(map[string]hcl.Range, 2)
	for _, block := range content.Blocks {
		if prev, dup := seen[block.Type]; dup {
			return boardingpass.Layout{}, fmt.Errorf("%s: duplicate %q block, first defined at %s", block.DefRange, block.Type, prev)
		}
		seen[block.Type] = block.DefRange

		target := &out.Row
		if block.Type == columnBlock {
			target = &out.Column
		}
		if err := decodeSegment(block.Body, target); err != nil {
			return boardingpass.Layout{}, fmt.Errorf("%s block: %w", block.Type, err)
		}
		logger.Debug("Decoded layout segment.", "segment", block.Type, "symbols", target.Symbols,
			"lower", string(target.Alphabet.Lower), "upper", string(target.Alphabet.Upper))
	}

	if err := out.Validate(); err != nil {
		return boardingpass.Layout{}, fmt.Errorf("invalid layout %s: %w", filename, err)
	}
	return out, nil
}

// decodeSegment overrides the fields of seg that the block sets.
func decodeSegment(body hcl.Body, seg *boardingpass.Segment) error {
	content, diags := body.Content(segmentSchema)
	if diags.HasErrors() {
		return diags
	}

	if attr, ok := content.Attributes["symbols"]; ok {
		if err := decodeAttr(attr, cty.Number, &seg.Symbols); err != nil {
			return err
		}
	}
	if attr, ok := content.Attributes["lower"]; ok {
		r, err := decodeSymbol(attr)
		if err != nil {
			return err
		}
		seg.Alphabet.Lower = r
	}
	if attr, ok := content.Attributes["upper"]; ok {
		r, err := decodeSymbol(attr)
		if err != nil {
			return err
		}
		seg.Alphabet.Upper = r
	}
	return nil
}

func decodeSymbol(attr *hcl.Attribute) (rune, error) {
	var s string
	if err := decodeAttr(attr, cty.String, &s); err != nil {
		return 0, err
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s: %q must be a single character, got %q", attr.Range, attr.Name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// decodeAttr evaluates a literal attribute, converts it to want and stores it
// in the Go pointer target.
func decodeAttr(attr *hcl.Attribute, want cty.Type, target any) error {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() || !val.IsKnown() {
		return fmt.Errorf("%s: %q must not be null", attr.Range, attr.Name)
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("%s: cannot convert %q from %s to %s: %w",
			attr.Range, attr.Name, val.Type().FriendlyName(), want.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return fmt.Errorf("%s: %q: %w", attr.Range, attr.Name, err)
	}
	return nil
}
