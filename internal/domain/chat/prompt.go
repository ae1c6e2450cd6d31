// Prompt assembly. The policy preamble lives in a versioned template (YAML on
// disk, compiled-in default) so assistant behavior can change without a
// rebuild. The preamble wording is policy, not request input: nothing here is
// caller-configurable.
package chat

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmonterocr/legalia/internal/infra/llm"
)

// Turn is one prior conversation turn as supplied by the client. The full
// history arrives fresh on every request; the server keeps no session state.
type Turn struct {
	Role    string `json:"role"` // "user" | "assistant" | "system"
	Content string `json:"content"`
}

// PromptTemplate holds the named slots of the policy preamble.
type PromptTemplate struct {
	Version        string   `yaml:"version"`
	Persona        string   `yaml:"persona"`
	Scope          string   `yaml:"scope"`
	CitationFormat string   `yaml:"citation_format"`
	Refusal        string   `yaml:"refusal"`
	MaxWords       int      `yaml:"max_words"`
	Examples       []string `yaml:"examples"`
}

// DefaultTemplate returns the compiled-in preamble, used when no template file
// is configured. Wording matches the deployed assistant behavior.
func DefaultTemplate() *PromptTemplate {
	return &PromptTemplate{
		Version: "builtin",
		Persona: "Eres un asistente EXCLUSIVO del workspace de documentos legales para notarios.",
		Scope: "- SOLO responde preguntas sobre los documentos del workspace\n" +
			"- Para búsquedas, identifica los documentos relevantes por sus keywords y tipo\n" +
			"- Sugiere cuál documento usar según la necesidad",
		CitationFormat: "- Si mencionas documentos, usa el formato EXACTO: [Doc ID: nombre]\n" +
			"- No uses negritas, cursivas ni ningún otro markup dentro o alrededor del marcador",
		Refusal:  "Solo puedo ayudarte con consultas sobre tus documentos del workspace. ¿Necesitas buscar algún machote?",
		MaxWords: 150,
		Examples: []string{
			"Para ese trámite puedes usar [Doc 2: Poder_General_Notarial.docx].",
			"Tienes dos opciones: [Doc 1: Contrato_Compraventa_Inmueble.docx] y [Doc 5: Contrato_Arrendamiento.docx].",
		},
	}
}

// LoadTemplate reads a PromptTemplate from a YAML file. Empty slots fall back
// to DefaultTemplate values, so a partial override file is valid.
func LoadTemplate(path string) (*PromptTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load prompt template: %w", err)
	}

	var t PromptTemplate
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}

	def := DefaultTemplate()
	if strings.TrimSpace(t.Persona) == "" {
		t.Persona = def.Persona
	}
	if strings.TrimSpace(t.Scope) == "" {
		t.Scope = def.Scope
	}
	if strings.TrimSpace(t.CitationFormat) == "" {
		t.CitationFormat = def.CitationFormat
	}
	if strings.TrimSpace(t.Refusal) == "" {
		t.Refusal = def.Refusal
	}
	if t.MaxWords <= 0 {
		t.MaxWords = def.MaxWords
	}
	if len(t.Examples) == 0 {
		t.Examples = def.Examples
	}
	return &t, nil
}

// Render produces the system-message text with the document index interpolated
// verbatim. The index block is opaque: pre-formatted by the document service.
func (t *PromptTemplate) Render(indice string) string {
	b := strings.Builder{}
	b.WriteString(strings.TrimSpace(t.Persona))
	b.WriteString("\n\nDOCUMENTOS DISPONIBLES:\n")
	b.WriteString(indice)
	b.WriteString("\n\nINSTRUCCIONES:\n")
	b.WriteString(strings.TrimSpace(t.Scope))
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(t.CitationFormat))
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Responde de forma CONCISA (máximo %d palabras)\n", t.MaxWords)
	b.WriteString("- Si te preguntan algo NO relacionado con el workspace, responde:\n")
	fmt.Fprintf(&b, "  %q\n", strings.TrimSpace(t.Refusal))

	if len(t.Examples) > 0 {
		b.WriteString("\nEJEMPLOS DE CITA CORRECTA:\n")
		for _, ex := range t.Examples {
			b.WriteString("- ")
			b.WriteString(strings.TrimSpace(ex))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// BuildMessages assembles the full message sequence for the completion call:
// the rendered system preamble, every prior turn in original order and role,
// then the new user message last. The history is forwarded whole; there is no
// token budget trimming.
func (t *PromptTemplate) BuildMessages(indice string, historial []Turn, mensaje string) []llm.Message {
	msgs := make([]llm.Message, 0, len(historial)+2)
	msgs = append(msgs, llm.Message{Role: "system", Content: t.Render(indice)})
	for _, turn := range historial {
		msgs = append(msgs, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: mensaje})
	return msgs
}
