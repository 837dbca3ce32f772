// Package intercept wraps the behavior objects of a host namespace so that
// documented methods validate their arguments and carry help text.
//
// The pieces compose bottom-up:
//
//   - MethodInterceptor wraps a single callable into a *Method.
//   - PrototypeInterceptor wraps a class's behavior object into a
//     *PrototypeProxy that wraps documented members on first read and reports
//     proxied ancestors as its parent.
//   - Registry maps original behavior objects to their proxies.
//   - ChainRepair fixes the parent link of subclasses that were never
//     proxied directly.
//
// A typical initialization pass:
//
//	reg := intercept.NewRegistry()
//	methods := intercept.NewMethodInterceptor(check.New(ns))
//	protos := intercept.NewPrototypeInterceptor(classes, reg, methods)
//
//	if _, err := protos.Create("p5", ns.Root()); err != nil {
//	    return err
//	}
//	repaired, err := intercept.NewChainRepair(reg).Run(ns)
package intercept
