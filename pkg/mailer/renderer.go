package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns markdown templates with YAML frontmatter into HTML wrapped
// in a layout. Parsed templates and layouts are cached; output never is.
type Renderer struct {
	fs        fs.FS
	md        goldmark.Markdown
	funcs     texttemplate.FuncMap
	templates map[string]*parsedTemplate
	layouts   map[string]*template.Template

	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

type parsedTemplate struct {
	metadata map[string]any
	tmpl     *texttemplate.Template
}

// RendererConfig configures a Renderer.
type RendererConfig struct {
	Funcs       texttemplate.FuncMap // merged over the defaults
	TemplateDir string               // default "."
	LayoutDir   string               // default "layouts"
}

// DefaultFuncs are available in every markdown template.
//
//	**Name:** {{ escape .Name }}
func DefaultFuncs() texttemplate.FuncMap {
	return texttemplate.FuncMap{
		"escape": EscapeMarkdown,
	}
}

// NewRenderer creates a renderer with the default config.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithConfig(fsys, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with cfg.
func NewRendererWithConfig(fsys fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}
	funcs := DefaultFuncs()
	maps.Copy(funcs, cfg.Funcs)

	return &Renderer{
		fs:          fsys,
		md:          goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Table)),
		funcs:       funcs,
		templates:   make(map[string]*parsedTemplate),
		layouts:     make(map[string]*template.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult holds a rendered message.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // executed markdown, before HTML conversion
}

// Render executes templateName with data, converts the markdown to HTML and
// wraps it in layout. Raw HTML in the markdown is omitted by goldmark.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	tpl, err := r.template(templateName)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := tpl.tmpl.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	var body bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	lt, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := lt.Execute(&out, map[string]any{
		"Content":  template.HTML(body.String()), //nolint:gosec // produced by goldmark with raw HTML disabled
		"Metadata": tpl.metadata,
	}); err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		Metadata: tpl.metadata,
		HTML:     out.String(),
		Text:     markdown.String(),
	}, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}
	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
	}
	tmpl, err := texttemplate.New(name).Funcs(r.funcs).Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	cached = &parsedTemplate{metadata: parsed.Metadata, tmpl: tmpl}
	r.templates[name] = cached
	return cached, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}
	lt, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layouts[name] = lt
	return lt, nil
}
