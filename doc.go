/*
Package friendly adds argument checking and help text to the classes of a host
namespace, driven by reference documentation.

It rewrites a namespace once, at startup. Every documented class gets its
behavior object replaced by a proxy: documented methods are wrapped on first
read so that each call is validated against the documented signatures before
it runs, and each wrapped method carries a lazily formatted help string with a
link to the online reference. Parent links are rewritten so that InstanceOf
checks keep working through proxies.

# Concept

The namespace (package host) is an explicit object model: classes hold a
replaceable behavior object, instances delegate member reads to it, and type
checks walk the chain of Parent links. The documentation (package docs) lists
class names and member records, usually loaded from a YUIDoc-style data.json.

# Usage

	package main

	import (
		"errors"
		"log"

		"github.com/aretw0/friendly"
		"github.com/aretw0/friendly/pkg/check"
		"github.com/aretw0/friendly/pkg/docs"
		"github.com/aretw0/friendly/pkg/host"
	)

	func main() {
		ns := host.NewNamespace("p5")
		vector := ns.Define("Vector", nil)
		vector.Prototype().Method("mult", func(this any, args []any) (any, error) {
			return this, nil
		})

		classes, err := docs.Load("data.json")
		if err != nil {
			log.Fatal(err)
		}

		eng, err := friendly.New(ns, classes)
		if err != nil {
			log.Fatal(err)
		}
		if err := eng.Run(); err != nil {
			log.Fatal(err)
		}

		v, _ := vector.New()
		if _, err := v.Invoke("mult", "two"); errors.Is(err, check.ErrArgumentViolation) {
			log.Println(err)
		}
	}

# Limitations

Chain repair inspects a single level of ancestry. A subclass whose parent is
neither proxied nor repaired before the pass starts keeps its raw chain.
*/
package friendly
