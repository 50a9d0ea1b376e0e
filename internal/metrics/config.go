package metrics

type Config struct {
	// Textfile is where the Prometheus textfile is written. Empty disables export.
	Textfile string
}
