package model

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mitchellh/go-homedir"

	"github.com/lexhub-io/lexadmin/pkg/api"
	"github.com/lexhub-io/lexadmin/pkg/config"
	"github.com/lexhub-io/lexadmin/pkg/schema"
	"github.com/lexhub-io/lexadmin/pkg/upload"
)

// Overrides are the command line flags that beat the config file.
type Overrides struct {
	APIBaseURL string
	Token      string
}

func NewFromConfigFile(path string, ov Overrides) (*Model, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	var configuration config.Config
	f, err := os.Open(expandedPath)
	if err != nil {
		// if the file is missing, ignore and use the default config
		configuration = config.Default
	} else {
		defer f.Close()
		cfg, err := config.NewFromReader(f)
		if err != nil {
			return nil, fmt.Errorf("unable to load configuration: %w", err)
		}
		configuration = *cfg
	}

	if ov.APIBaseURL != "" {
		configuration.APIBaseURL = ov.APIBaseURL
	}
	if ov.Token != "" {
		configuration.Token = ov.Token
	}

	token, err := api.LoadToken(configuration.Token, configuration.TokenFile)
	if err != nil {
		return nil, err
	}

	client, err := api.New(configuration.APIBaseURL, token, configuration.RequestTimeout)
	if err != nil {
		return nil, err
	}

	common := commonModel{
		cfg:    configuration,
		client: client,
	}

	if token != "" {
		// Display only; a bad token still reaches the platform, which is
		// the actual verifier.
		if info, err := api.InspectToken(token); err == nil {
			common.token = info
		}
		if err := api.SaveToken(token); err != nil {
			return nil, err
		}
	}

	if configuration.UploadInbox != "" {
		inbox, err := upload.NewInbox(configuration.UploadInbox)
		if err != nil {
			return nil, fmt.Errorf("error initializing upload inbox: %w", err)
		}
		common.inbox = inbox
	}

	screens := schema.All()
	items := make([]list.Item, len(screens))
	browsers := make(map[string]*browserModel, len(screens))
	for i, sch := range screens {
		items[i] = screenItem{schema: sch}
		browsers[sch.Resource] = newBrowserModel(&common, sch)
	}

	home := list.NewModel(items, list.NewDefaultDelegate(), 0, 0)
	home.Title = "Management screens"
	home.SetShowStatusBar(false)

	m := Model{
		common:   &common,
		state:    stateShowHome,
		home:     home,
		browsers: browsers,
	}

	return &m, nil
}
