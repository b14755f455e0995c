// Package pkg provides the core libraries for the tilesmith texture builder.
//
// # Overview
//
// Tilesmith renders a game resource pack from vector sources. The material
// catalogue declares hundreds of textures as task specification trees;
// structurally equal sub-trees collapse into single nodes of one dependency
// graph, so shared layers render exactly once per build. The pkg directory
// is organized into three main areas:
//
//  1. [taskspec], [graph], [lazy], [build] - The build engine (node language,
//     deduplicated graph, at-most-once execution, pipeline runner)
//  2. [pixel], [raster], [palette] - Image primitives (buffers and pooling,
//     compositing operations, color tables)
//  3. [catalogue] - Declarative content (the material tables)
//
// # Architecture
//
// The typical data flow through tilesmith:
//
//	Material Catalogue (parameter tables)
//	         ↓
//	    [taskspec] package (immutable spec trees, structural identity)
//	         ↓
//	    [graph] package (dedup into one dependency graph)
//	         ↓
//	    [graph] scheduler + [raster] operations (bounded concurrent render)
//	         ↓
//	    PNG tiles under <out>/<category>/<name>.png
//
// # Quick Start
//
//	materials, _ := catalogue.All()
//	runner := build.NewRunner(logger)
//	result, err := runner.Execute(ctx, catalogue.Sinks(materials), build.Options{
//	    TileWidth: 16,
//	})
package pkg
