// Package io exports assembled Mikado graphs as JSON or YAML.
//
// # Format
//
// Both encodings share one shape, mirroring the node and edge sets produced
// by the outline parser:
//
//	{
//	  "nodes": [
//	    {"name": "Upgrade ORM", "done": false, "goal": true},
//	    {"name": "Replace raw queries", "done": true, "goal": false}
//	  ],
//	  "edges": [
//	    {"src": "Upgrade ORM", "dst": "Replace raw queries", "done": false}
//	  ]
//	}
//
// Nodes are sorted by name and edges by source then destination, so equal
// graphs encode to equal bytes.
//
// # Usage
//
//	if err := io.WriteJSON(g, os.Stdout); err != nil {
//	    return err
//	}
//	if err := io.ExportYAML(g, "plan.yaml"); err != nil {
//	    return err
//	}
package io
