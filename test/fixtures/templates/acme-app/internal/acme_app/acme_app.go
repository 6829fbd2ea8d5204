package acme_app

// AcmeApp runs the service.
type AcmeApp struct{}

// New creates an AcmeApp.
func New() *AcmeApp { return &AcmeApp{} }

// Run starts the Acme_App main loop.
func (a *AcmeApp) Run() {}
