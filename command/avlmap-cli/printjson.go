// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// collects entries then writes them in the selected format
type output struct {
	m       *metadata
	entries []jsonEntry
}

func (m *metadata) newOutput() *output {
	return &output{
		m:       m,
		entries: make([]jsonEntry, 0, 16),
	}
}

func (o *output) add(k key, value string) {
	if o.m.json {
		o.entries = append(o.entries, jsonEntry{Key: k.String(), Value: value})
		return
	}
	if "" == value {
		fmt.Fprintf(o.m.w, "%s\n", k)
	} else {
		fmt.Fprintf(o.m.w, "%s %s\n", k, value)
	}
}

func (o *output) flush() error {
	if !o.m.json {
		return nil
	}
	return printJson(o.m.w, o.entries)
}
