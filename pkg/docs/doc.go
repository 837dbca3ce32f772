// Package docs holds the documentation-derived class database.
//
// A Registry is what the interception layer consumes: the set of documented
// class names, in declaration order, and the flat list of member records
// ("classitems") each naming its class, member, description and signature.
// Documents use the YUIDoc data.json layout and may be written as JSON or YAML:
//
//	classes:
//	  p5: {}
//	  p5.Vector: {}
//	classitems:
//	  - class: p5.Vector
//	    name: add
//	    description: Adds x, y, and z components to a vector.
//	    params:
//	      - name: x
//	        type: Number|p5.Vector
//
// Fields the model does not know about are kept in ClassItem.Extra.
package docs
