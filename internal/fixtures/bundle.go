// Package fixtures provides library bundles shared by loader, diff,
// explorer, and CLI tests.
package fixtures

// Bundle is a fully linked two-library bundle: a minimal core library and a
// geometry library exercising every declaration form, including private
// members, getter/setter pairs, constructors, an extension, and a typedef.
const Bundle = `-- tarn_core.yaml --
uri: tarn:core
name: core
classes:
  - name: Object
    procedures:
      - name: toString
        function:
          returnType: {kind: interface, target: ["tarn:core", "String"]}
  - name: String
    supertype: {kind: interface, target: ["tarn:core", "Object"]}
  - name: int
    supertype: {kind: interface, target: ["tarn:core", "Object"]}
  - name: List
    typeParameters:
      - name: E
        bound: {kind: interface, target: ["tarn:core", "Object"], nullability: nullable}
    supertype: {kind: interface, target: ["tarn:core", "Object"]}
    procedures:
      - name: add
        function:
          parameters:
            - name: value
              type: {kind: typeParameter, name: E}
          returnType: {kind: void}
-- pkg_geo.yaml --
uri: pkg:geo/geo.tarn
typedefs:
  - name: Transform
    type:
      kind: function
      parameters:
        - {kind: interface, target: ["pkg:geo/geo.tarn", "Point"], nullability: nullable}
      returnType: {kind: interface, target: ["pkg:geo/geo.tarn", "Point"]}
classes:
  - name: Point
    supertype: {kind: interface, target: ["tarn:core", "Object"]}
    fields:
      - name: x
        type: {kind: interface, target: ["tarn:core", "int"]}
        final: true
      - name: y
        type: {kind: interface, target: ["tarn:core", "int"]}
        final: true
      - name: _hash
        type: {kind: interface, target: ["tarn:core", "int"], nullability: nullable}
    constructors:
      - name: ""
      - name: origin
        const: true
    procedures:
      - name: scale
        function:
          parameters:
            - name: factor
              type: {kind: interface, target: ["tarn:core", "int"]}
          returnType: {kind: interface, target: ["pkg:geo/geo.tarn", "Point"]}
      - name: magnitude
        kind: getter
        function:
          returnType: {kind: interface, target: ["tarn:core", "int"]}
      - name: magnitude
        kind: setter
        function:
          parameters:
            - name: value
              type: {kind: interface, target: ["tarn:core", "int"]}
          returnType: {kind: void}
extensions:
  - name: PointList
    on:
      kind: interface
      target: ["tarn:core", "List"]
      typeArguments:
        - {kind: interface, target: ["pkg:geo/geo.tarn", "Point"]}
    members:
      - name: flipAll
        kind: method
        target: ["pkg:geo/geo.tarn", "pkg:geo/geo.tarn", "_flipAll"]
fields:
  - name: origin
    type: {kind: interface, target: ["pkg:geo/geo.tarn", "Point"]}
    const: true
procedures:
  - name: main
    function:
      returnType: {kind: void}
  - name: _flipAll
    function:
      parameters:
        - name: points
          type:
            kind: interface
            target: ["tarn:core", "List"]
            typeArguments:
              - {kind: interface, target: ["pkg:geo/geo.tarn", "Point"]}
      returnType: {kind: void}
`

// DanglingBundle is a single library whose supertype and field type point
// into a library absent from the bundle, so its references stay unlinked.
const DanglingBundle = `-- pkg_app.yaml --
uri: pkg:app/app.tarn
classes:
  - name: Widget
    supertype: {kind: interface, target: ["pkg:gone/gone.tarn", "Ghost"]}
    fields:
      - name: style
        type: {kind: interface, target: ["pkg:gone/gone.tarn", "Style"], nullability: nullable}
procedures:
  - name: main
    function:
      returnType: {kind: void}
`
