package profile

import (
	"fmt"
	"io"

	"github.com/ngmaloney/preflight-terminal/internal/models"
	"gopkg.in/yaml.v3"
)

// Export writes p as YAML
func Export(w io.Writer, p models.PilotProfile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return enc.Close()
}

// Import reads a YAML profile. Keys missing from the document keep their
// default values.
func Import(r io.Reader) (models.PilotProfile, error) {
	p := models.DefaultProfile()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return models.PilotProfile{}, fmt.Errorf("profile document is empty")
		}
		return models.PilotProfile{}, fmt.Errorf("decoding profile: %w", err)
	}

	cert, ok := models.ParseCertificate(string(p.Certificate))
	if !ok {
		return models.PilotProfile{}, fmt.Errorf("unknown certificate %q", p.Certificate)
	}
	p.Certificate = cert

	return p, nil
}
