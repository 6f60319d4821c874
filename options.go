package fragscan

// IndexOption is a functional option for configuring index construction.
type IndexOption func(*indexConfig)

type indexConfig struct {
	algorithm FingerprintAlgorithmID
	verify    bool
}

func defaultIndexConfig() *indexConfig {
	return &indexConfig{
		algorithm: AlgoXXH3,
	}
}

// WithAlgorithm selects the hash function used to fingerprint substrings.
func WithAlgorithm(id FingerprintAlgorithmID) IndexOption {
	return func(c *indexConfig) {
		c.algorithm = id
	}
}

// WithVerification makes the index confirm every fingerprint hit against
// the text before reporting presence. Without it, membership is decided by
// fingerprint equality alone and two distinct strings that hash identically
// produce a false positive.
func WithVerification() IndexOption {
	return func(c *indexConfig) {
		c.verify = true
	}
}
