package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/config"
	"github.com/go-home-io/gluehome/utils"
)

// Default file system config loader.
type fsConfig struct {
	location string
	logger   common.ILoggerProvider
}

// Init sets files location.
func (c *fsConfig) Init(data *config.InitDataConfig) error {
	c.logger = data.Logger
	loc := data.Location
	if "" == loc {
		loc = utils.GetDefaultConfigsDir()
		c.logger.Info("Using default location", common.LogFileToken, loc)
	}

	c.location = loc
	return nil
}

// Load files from local file system.
// Location can be either a single file or a folder.
func (c *fsConfig) Load() chan []byte {
	fileList, err := c.files()
	if err != nil {
		c.logger.Error("Failed to walk through files", err, common.LogFileToken, c.location)
		return nil
	}

	filesChan := make(chan []byte)

	go func() {
		for _, v := range fileList {
			fileData, err := os.ReadFile(v)
			if err != nil {
				c.logger.Error("Failed to read config file", err, common.LogFileToken, v)
				continue
			}

			c.logger.Info("Processing config file", common.LogFileToken, v)
			filesChan <- fileData
		}

		close(filesChan)
	}()

	return filesChan
}

// Returns sorted list of config files.
func (c *fsConfig) files() ([]string, error) {
	fi, err := os.Stat(c.location)
	if err != nil {
		return nil, err
	}

	if !fi.IsDir() {
		return []string{c.location}, nil
	}

	fileList := make([]string, 0)
	err = filepath.Walk(c.location, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			c.logger.Warn("Failed get folder files", common.LogFileToken, path)
			return err
		}

		if f.IsDir() || !config.IsValidConfigFileName(path) {
			return nil
		}

		fileList = append(fileList, path)
		return nil
	})

	sort.Strings(fileList)
	return fileList, err
}
