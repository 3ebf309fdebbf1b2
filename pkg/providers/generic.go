package providers

// GenericParser handles URLs no dedicated parser claims. It records timing
// and raw bytes only; the trace carries no items and an "unknown" model.
type GenericParser struct{}

func (p *GenericParser) Claims(string) bool { return true }

func (p *GenericParser) Parse(in ParseInput) (*ParsedTrace, error) {
	t := &ParsedTrace{
		Model: "unknown",
		Error: in.Error,
	}
	if m, ok := in.Metadata["model"].(string); ok && m != "" {
		t.Model = m
	}
	return t, nil
}
