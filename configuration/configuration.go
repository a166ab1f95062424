// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/nonlinear/fault"
	"github.com/bitmark-inc/nonlinear/graph"
	"github.com/bitmark-inc/nonlinear/tree"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultTreeKind         = tree.KindBalanced
	defaultGraphCapacity    = 64
	defaultGraphDefaultCost = 0

	defaultLogDirectory = "log"
	defaultLogFile      = "nonlinear.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// TreeType - which standard tree BuildTree creates
type TreeType struct {
	Kind string `gluamapper:"kind" json:"kind"`
}

// GraphType - parameters for BuildGraph
type GraphType struct {
	Capacity    int `gluamapper:"capacity" json:"capacity"`
	DefaultCost int `gluamapper:"default_cost" json:"default_cost"`
}

// LoggerType - log file settings
type LoggerType struct {
	Directory string      `gluamapper:"directory" json:"directory"`
	File      string      `gluamapper:"file" json:"file"`
	Size      int         `gluamapper:"size" json:"size"`
	Count     int         `gluamapper:"count" json:"count"`
	Console   bool        `gluamapper:"console" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" json:"levels"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string     `gluamapper:"data_directory" json:"data_directory"`
	Tree          TreeType   `gluamapper:"tree" json:"tree"`
	Graph         GraphType  `gluamapper:"graph" json:"graph"`
	Logging       LoggerType `gluamapper:"logging" json:"logging"`
}

// a fresh map each time since the mapper adds to an existing one
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"tree":            "info",
		"graph":           "info",
		logger.DefaultTag: "critical",
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Tree: TreeType{
			Kind: string(defaultTreeKind),
		},

		Graph: GraphType{
			Capacity:    defaultGraphCapacity,
			DefaultCost: defaultGraphDefaultCost,
		},

		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Tree.Kind = strings.ToLower(options.Tree.Kind)
	switch tree.Kind(options.Tree.Kind) {
	case tree.KindBase, tree.KindOrdered, tree.KindBalanced:
	default:
		return nil, fault.ErrUnknownTreeKind
	}

	if options.Graph.Capacity <= 0 {
		return nil, fault.ErrInvalidCapacity
	}
	if options.Graph.DefaultCost < 0 {
		return nil, fault.ErrInvalidCost
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q  error: %w", options.DataDirectory, fault.ErrInvalidDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = absolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q  error: %w", options.DataDirectory, fault.ErrInvalidDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("file: %q  error: %w", options.Logging.File, fault.ErrInvalidFileName)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = absolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// LoggerConfiguration - settings in the form logger.Initialise takes
func (c *Configuration) LoggerConfiguration() logger.Configuration {
	levels := make(map[string]string, len(c.Logging.Levels))
	for tag, level := range c.Logging.Levels {
		levels[tag] = level
	}
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    levels,
	}
}

// BuildTree - an empty tree of the configured kind
func BuildTree[T constraints.Ordered](c *Configuration) (*tree.Tree[T], error) {
	return tree.NewKind[T](tree.Kind(c.Tree.Kind))
}

// BuildGraph - an empty graph with the configured capacity and
// default vertex cost
func BuildGraph[T constraints.Ordered](c *Configuration) (*graph.Digraph[T], error) {
	g, err := graph.New[T](c.Graph.Capacity)
	if nil != err {
		return nil, err
	}
	if !g.SetDefaultCost(c.Graph.DefaultCost) {
		return nil, fault.ErrInvalidCost
	}
	return g, nil
}

// relative paths are taken from directory
func absolute(directory string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(directory, path)
}
