/*
Package propstxt parses UModel-emitted .props.txt asset descriptors and
extracts the typed information needed to rebuild materials outside the engine.

A descriptor is a textual dump of an Unreal Engine object's properties:
nested Key=Value definitions with optional [index] qualifiers, structured
blocks delimited by braces or parentheses, quoted object references, and
free-form scalar literals. The format is not deterministic at the token
level (a parenthesized group after '=' may open a block or belong to a
scalar such as "BLEND_Masked (1)"), so parsing runs an Earley-style chart
recognizer over a declarative grammar and resolves ambiguity by production
priority with greedy span selection.

Mesh descriptor example:

	mesh, err := propstxt.DecodeMeshFile("SM_Chair.props.txt")
	if err != nil {
		// handle error
	}
	for _, p := range mesh.Materials {
		// "/Game/Furniture/MI_Chair.MI_Chair"
	}

Material descriptor example:

	mat, err := propstxt.DecodeMaterialFile("MI_Chair.props.txt")
	if err != nil {
		// handle error
	}
	for _, b := range mat.Textures.Bindings() {
		// b.Name = "Diffuse Map", b.Path = "/Game/Textures/T_Chair_D.T_Chair_D"
	}
	if mat.Overrides != nil && mat.Overrides.TwoSided != nil {
		// backface culling decision
	}

Mask color secondary walk:

	colors, err := propstxt.ExtractMaskColors(mat.Root)
	if err != nil {
		// handle error
	}
	_ = colors["color 1"]

Validator example:

	issues := propstxt.Validate(mat, &propstxt.ValidateOptions{ExportRoot: "/exports"})
	if len(issues) != 0 {
		// handle validation issues
	}

Writer example:

	out, err := propstxt.Format(mat.Root, nil)
	if err != nil {
		// handle error
	}
*/
package propstxt
