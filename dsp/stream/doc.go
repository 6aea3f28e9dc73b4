// Package stream wires a derivative estimator and the optional low-pass
// filters into a single per-sample processor.
//
// A [Processor] owns its own instances of every stage, so two processors
// never share state. Each call to [Processor.ProcessSample] runs the
// configured estimator on (value, timestep) and feeds the resulting
// derivative through whichever low-pass filters are enabled:
//
//	p, err := stream.New(
//		stream.WithSmoothing(10),
//		stream.WithWindowLength(3),
//	)
//	if err != nil {
//		return err
//	}
//	res, err := p.ProcessSample(x, dt)
//
// Use [WithBearingDerivative] for angles wrapped onto (-π, π].
package stream
