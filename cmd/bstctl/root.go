// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ajwerner/bst"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	strategy string
	order    string
	find     int
	remove   []int
	kth      int
	rng      string
	split    int
	verbose  bool

	changed func(name string) bool
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.strategy, "strategy", "s", "avl", "balancing strategy: unbalanced, avl or splay")
	fs.StringVarP(&o.order, "order", "o", "in", "traversal order to print: pre, in or post")
	fs.IntVar(&o.find, "find", 0, "look up a key")
	fs.IntSliceVar(&o.remove, "remove", nil, "keys to remove, in order")
	fs.IntVar(&o.kth, "kth", 0, "print the k-th smallest key (1-based)")
	fs.StringVar(&o.rng, "range", "", "print the keys in the inclusive range LOW:HIGH")
	fs.IntVar(&o.split, "split", 0, "split the tree at a key and print both halves")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every tree operation")
	o.changed = fs.Changed
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "bstctl [flags] KEY...",
		Short: "Build a binary search tree from integer keys and query it",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if o.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			return run(o, keys, cmd.OutOrStdout(), log)
		},
		SilenceUsage: true,
	}
	bindFlags(cmd.Flags(), o)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func parseStrategy(s string) (bst.Strategy, error) {
	for _, st := range []bst.Strategy{bst.Unbalanced, bst.AVL, bst.Splay} {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, errors.Errorf("unknown strategy %q", s)
}

func parseOrder(s string) (bst.Order, error) {
	switch strings.ToLower(s) {
	case "pre", "preorder":
		return bst.PreOrder, nil
	case "in", "inorder":
		return bst.InOrder, nil
	case "post", "postorder":
		return bst.PostOrder, nil
	default:
		return 0, errors.Errorf("unknown order %q", s)
	}
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing key %q", a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseRange(s string) (low, high int, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Errorf("range %q is not of the form LOW:HIGH", s)
	}
	if low, err = strconv.Atoi(lo); err != nil {
		return 0, 0, errors.Wrap(err, "parsing range low")
	}
	if high, err = strconv.Atoi(hi); err != nil {
		return 0, 0, errors.Wrap(err, "parsing range high")
	}
	return low, high, nil
}

type intTree = bst.Tree[int, struct{}]

func collect(t *intTree, o bst.Order) []int {
	keys := []int{}
	bst.Traverse(t.Root(), o, func(k int, _ struct{}) { keys = append(keys, k) })
	return keys
}

func run(o *options, keys []int, out io.Writer, log logrus.FieldLogger) error {
	s, err := parseStrategy(o.strategy)
	if err != nil {
		return err
	}
	order, err := parseOrder(o.order)
	if err != nil {
		return err
	}
	changed := o.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	t := bst.New[int, struct{}](s, cmp.Compare[int], nil)
	for _, k := range keys {
		t.Insert(k, struct{}{})
		log.WithField("key", k).Debug("inserted")
	}
	log.WithFields(logrus.Fields{
		"strategy": s,
		"size":     t.Len(),
		"height":   t.Height(),
	}).Debug("built tree")

	for _, k := range o.remove {
		if t.Delete(k) {
			fmt.Fprintf(out, "removed %d\n", k)
		} else {
			fmt.Fprintf(out, "%d not found\n", k)
		}
		log.WithField("key", k).Debug("removed")
	}
	if changed("find") {
		if n := t.Find(o.find); n != nil {
			fmt.Fprintf(out, "found %d\n", n.Key())
		} else {
			fmt.Fprintf(out, "%d not found\n", o.find)
		}
	}
	if changed("kth") {
		if n := t.Kth(o.kth); n != nil {
			fmt.Fprintf(out, "kth(%d) = %d\n", o.kth, n.Key())
		} else {
			fmt.Fprintf(out, "kth(%d) out of range\n", o.kth)
		}
	}
	if o.rng != "" {
		low, high, err := parseRange(o.rng)
		if err != nil {
			return err
		}
		got := []int{}
		t.Range(low, high, func(k int, _ struct{}) { got = append(got, k) })
		fmt.Fprintf(out, "range [%d, %d]: %v\n", low, high, got)
	}
	if changed("split") {
		left, right := t.Split(o.split)
		log.WithFields(logrus.Fields{
			"left":  left.Len(),
			"right": right.Len(),
		}).Debug("split")
		fmt.Fprintf(out, "left: %v\nright: %v\n", collect(left, order), collect(right, order))
		t = bst.Merge(left, right)
	}

	fmt.Fprintf(out, "%s: %v\n", order, collect(t, order))
	if err := t.Verify(); err != nil {
		log.WithError(err).Error("tree invariant violated")
		return err
	}
	fmt.Fprintf(out, "size=%d height=%d\n", t.Len(), t.Height())
	return nil
}
