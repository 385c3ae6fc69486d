package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates that more distinct edges were requested than the
// graph can hold without loops or parallel edges.
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrConstructFailed indicates a nil constructor or an otherwise impossible build.
var ErrConstructFailed = errors.New("builder: construction failed")
