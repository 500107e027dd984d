// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/storage"
)

// key - the raw bytes of a key, displayed as Base58 when requested
type key struct {
	raw    string
	base58 bool
}

// String - display form of a key
func (k key) String() string {
	if k.base58 {
		return base58.Encode([]byte(k.raw))
	}
	return k.raw
}

// raw byte order, independent of display
func keyLess(a, b key) bool {
	return a.raw < b.raw
}

type entryTree = avl.Tree[key, string]

// convert a command line key to its raw form
func (m *metadata) parseKey(s string) (key, error) {
	if !m.base58 {
		return key{raw: s}, nil
	}
	b, err := base58.Decode(s)
	if nil != err {
		return key{}, fmt.Errorf("%w: %q", ErrInvalidBase58Key, s)
	}
	return key{raw: string(b), base58: true}, nil
}

// required key flag
func (m *metadata) requiredKey(c *cli.Context, name string) (key, error) {
	s := c.String(name)
	if "" == s {
		return key{}, ErrRequiredKey
	}
	return m.parseKey(s)
}

// build the tree from the database or the input text
func (m *metadata) readTree(c *cli.Context, last bool) (*entryTree, error) {

	if "" != m.database {
		return m.loadDatabase("", "")
	}

	tree := avl.New[key, string](keyLess)

	r := m.r
	switch c.NArg() {
	case 0:
	case 1:
		f, err := os.Open(c.Args().First())
		if nil != err {
			return nil, err
		}
		defer f.Close()
		r = f
	default:
		return nil, ErrTooManyFiles
	}

	if err := m.parseLines(r, tree, last); nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "read: %d entries  height: %d\n", tree.Size(), tree.Height())
	}
	return tree, nil
}

// read the database entries with raw keys in [from, to), an empty to
// means no upper limit
func (m *metadata) loadDatabase(from string, to string) (*entryTree, error) {

	s, err := storage.Open(m.database, true)
	if nil != err {
		return nil, err
	}
	defer s.Close()

	raw := avl.NewOrdered[string, string]()
	n, err := s.LoadRange(raw, from, to)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "loaded: %d entries\n", n)
	}

	tree := avl.New[key, string](keyLess)
	raw.Ascend(func(k string, v string) bool {
		tree.Insert(key{raw: k, base58: m.base58}, v)
		return true
	})
	return tree, nil
}

// fetch one value straight from the database
func (m *metadata) lookupDatabase(k key) (string, error) {

	s, err := storage.Open(m.database, true)
	if nil != err {
		return "", err
	}
	defer s.Close()

	value, found, err := s.Get(k.raw)
	if nil != err {
		return "", err
	}
	if !found {
		return "", fault.ErrKeyNotFound
	}
	return value, nil
}

// each line is a key, optional white space and a value
//
// blank lines and lines starting with '#' are skipped
func (m *metadata) parseLines(r io.Reader, tree *entryTree, last bool) error {

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		keyText := line
		value := ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			keyText = line[:i]
			value = strings.TrimSpace(line[i:])
		}
		k, err := m.parseKey(keyText)
		if nil != err {
			return fmt.Errorf("line: %d  %w", lineNumber, err)
		}

		if last {
			*tree.Index(k) = value
		} else {
			tree.Insert(k, value)
		}
	}
	return scanner.Err()
}
