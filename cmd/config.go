package cmd

// Config carries the process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is a comma separated broker list. Empty disables event
	// publishing.
	KafkaBrokers string

	// ImageStoreDriver selects "local" or "cloudinary".
	ImageStoreDriver string
	ImageDir         string
	ImageBaseURL     string
	CloudinaryURL    string
	CloudinaryFolder string
}
