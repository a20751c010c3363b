package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/pipeline"
)

// Renderer writes build and validation reports.
type Renderer struct {
	out  io.Writer
	mode Mode
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer, mode Mode) *Renderer {
	return &Renderer{out: out, mode: mode}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.mode != ModeStyled {
		return text
	}
	return s.Render(text)
}

// BuildSummary reports the header, per-stage deltas and instance counts of a build.
func (r *Renderer) BuildSummary(result *pipeline.Result) {
	h := result.Archive.Header

	var header strings.Builder
	fmt.Fprintf(&header, "%s %s\n", r.style(LabelStyle, "Archive:    "), h.Name)
	fmt.Fprintf(&header, "%s %s\n", r.style(LabelStyle, "GUID:       "), h.GUID)
	fmt.Fprintf(&header, "%s %s\n", r.style(LabelStyle, "Version:    "), h.Version)
	fmt.Fprintf(&header, "%s %s\n", r.style(LabelStyle, "Created:    "), h.CreationTime.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(&header, "%s %s", r.style(LabelStyle, "Fingerprint:"), h.Fingerprint)
	if result.OutputPath != "" {
		fmt.Fprintf(&header, "\n%s %s", r.style(LabelStyle, "Output:     "), result.OutputPath)
	}

	title := fmt.Sprintf("%s Built %d entities, %d relationships, %d classifications",
		SymbolCheck, result.Stats.Entities, result.Stats.Relationships, result.Stats.Classifications)
	fmt.Fprintln(r.out, r.style(SuccessStyle.Bold(true), title))
	if r.mode == ModeStyled {
		fmt.Fprintln(r.out, BoxStyle.Render(header.String()))
	} else {
		fmt.Fprintln(r.out, header.String())
	}

	r.section("Stages")
	for _, s := range result.Stages {
		fmt.Fprintf(r.out, "  %-30s %s\n", s.Name,
			r.style(MutedStyle, fmt.Sprintf("+%d nodes, +%d relationships", s.Nodes, s.Relationships)))
	}

	r.counts("Entity types", result.Stats.EntityTypes)
	r.counts("Relationship types", result.Stats.RelationTypes)
	r.counts("Classifications", result.Stats.ClassTypes)
}

// Validation reports the record counts of a catalogue and every problem found.
func (r *Renderer) Validation(cat *catalogue.Catalogue, result catalogue.ValidationResult) {
	fmt.Fprintln(r.out, r.style(TitleStyle, "Catalogue: "+cat.Source))
	for _, c := range cat.Counts() {
		fmt.Fprintf(r.out, "  %-32s %d\n", c.Category, c.Count)
	}
	fmt.Fprintln(r.out)

	if !result.HasErrors() {
		fmt.Fprintln(r.out, r.style(SuccessStyle, SymbolCheck+" Catalogue is valid"))
		return
	}

	fmt.Fprintln(r.out, r.style(ErrorStyle, fmt.Sprintf("%s %d problem(s) found", SymbolCross, len(result.Errors))))
	for _, e := range result.Errors {
		fmt.Fprintf(r.out, "  %s %s\n", SymbolBullet, e.Error())
	}
}

func (r *Renderer) section(title string) {
	if r.mode == ModeStyled {
		fmt.Fprintln(r.out, SectionStyle.Render(title))
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", title)
}

func (r *Renderer) counts(title string, counts []archive.TypeCount) {
	if len(counts) == 0 {
		return
	}
	r.section(title)
	for _, c := range counts {
		fmt.Fprintf(r.out, "  %-45s %5d\n", c.TypeName, c.Count)
	}
}
