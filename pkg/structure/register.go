package structure

// RegisterBuiltins registers all built-in structures and their aliases.
func RegisterBuiltins(registry *Registry) {
	registry.Register(NewExactHandler())
	registry.RegisterAlias("raw", "exact")
	registry.RegisterAlias("text", "exact")

	registry.Register(NewParagraphHandler())
	registry.RegisterAlias("p", "paragraph")

	registry.Register(NewMarkdownHandler())
	registry.RegisterAlias("md", "markdown")

	registry.Register(NewCodeHandler())

	registry.Register(NewYAMLHandler())
	registry.RegisterAlias("data", "yaml")

	registry.Register(NewSectionHandler())
	registry.RegisterAlias("group", "section")
}

//nolint:gochecknoinits // init is the idiomatic way to populate the default registry
func init() {
	RegisterBuiltins(DefaultRegistry)
}
