package main

import (
	"community_survey/internal/client"
	"community_survey/internal/identity"
)

var apiURL string

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL (default client.api_url)")
}

// newAPIClient returns a client for the configured server together with the
// identity of this terminal. The identity is provisioned once and reused.
func newAPIClient() (*client.Client, identity.Token, error) {
	token, err := identity.Provision(cfg.Client.IdentityFile)
	if err != nil {
		return nil, "", err
	}
	base := apiURL
	if base == "" {
		base = cfg.Client.APIURL
	}
	return client.New(base, nil), token, nil
}
