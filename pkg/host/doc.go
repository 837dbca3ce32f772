/*
Package host models the object graph that friendly intercepts.

A Namespace holds a root Class and named members, some of which are classes.
Every Class points at a Behavior: the shared object holding the class's
methods, which its instances delegate to. A Behavior exposes exactly two
operations, a member read (Get) and a parent-link query (Parent), so any value
implementing the interface can stand in for the original. That is how
interception works without language-level trapping: a wrapper is just another
Behavior.

Type checks never trust the raw parent pointers. InstanceOf walks the chain
through Parent, so wrappers that rewrite the parent link decide what the
observable ancestry looks like.

	ns := host.NewNamespace("p5")
	vector := ns.Define("Vector", nil)
	vector.Prototype().Method("add", func(this any, args []any) (any, error) {
		return this, nil
	})

	v, _ := vector.New()
	_, err := v.Invoke("add", 1, 2)
*/
package host
