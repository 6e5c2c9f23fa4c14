package workflow

// SuggestionProvider is the external address-autocomplete capability. It
// calls the registered function once per confirmed user selection with the
// provider's formatted address, and never for free-typed text. When the
// provider is unavailable the null object below leaves the controller inert:
// the address stays a plain manual field and no error is raised.
type SuggestionProvider interface {
	Subscribe(onSelect func(address string))
}

type noopProvider struct{}

func (noopProvider) Subscribe(func(string)) {}
