// Package weighting turns column degrees into column weights for the dense
// block detector.
//
// Heavily connected destination columns (popular products, celebrity
// accounts) are where camouflage edges are cheapest to add. Down-weighting
// them by 1/sqrt or 1/log of their degree keeps a planted block dense while
// camouflage mass shrinks. Uniform keeps the plain average-degree objective.
//
//	model, err := weighting.Apply(m, weighting.InverseLog)
//	// model.Weights[j] == 1/ln(colSum[j]+5); model.W == m·diag(model.Weights)
package weighting
