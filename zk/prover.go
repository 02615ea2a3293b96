package zk

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/rfaulhaber/ttt/cache"
	"github.com/rfaulhaber/ttt/eval"
	"github.com/rfaulhaber/ttt/expr"
)

// Prover compiles expression circuits and generates Groth16 proofs. Compiled
// circuits are reused across proofs of the same expression, keyed by the
// canonical expression hash.
type Prover struct {
	mu       sync.RWMutex
	circuits map[string]*CompiledCircuit
	curve    ecc.ID
}

// CompiledCircuit holds a compiled constraint system and its keys.
type CompiledCircuit struct {
	Key          string
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	Constraints  int
}

// Proof is a generated proof together with what is needed to check it.
type Proof struct {
	Expression  string
	Output      bool
	Constraints int

	proof  groth16.Proof
	vk     groth16.VerifyingKey
	public witness.Witness
}

// NewProver creates a prover on BN254.
func NewProver() *Prover {
	return &Prover{
		circuits: make(map[string]*CompiledCircuit),
		curve:    ecc.BN254,
	}
}

// Compile compiles the circuit for e and runs trusted setup, caching the
// result for reuse.
func (p *Prover) Compile(e expr.Expr) (*CompiledCircuit, error) {
	key := cache.Key(e)

	p.mu.RLock()
	cc, ok := p.circuits[key]
	p.mu.RUnlock()
	if ok {
		return cc, nil
	}

	cs, err := frontend.Compile(p.curve.ScalarField(), r1cs.NewBuilder, NewCircuit(e))
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	cc = &CompiledCircuit{
		Key:          key,
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		Constraints:  cs.GetNbConstraints(),
	}

	p.mu.Lock()
	p.circuits[key] = cc
	p.mu.Unlock()
	return cc, nil
}

// Prove generates a proof that the prover knows an assignment under which e
// evaluates to the proof's public Output.
func (p *Prover) Prove(e expr.Expr, assignment eval.Assignment) (*Proof, error) {
	full, output, err := NewWitness(e, assignment)
	if err != nil {
		return nil, err
	}

	cc, err := p.Compile(e)
	if err != nil {
		return nil, err
	}

	w, err := frontend.NewWitness(full, p.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}

	proof, err := groth16.Prove(cc.CS, cc.ProvingKey, w)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}

	public, err := w.Public()
	if err != nil {
		return nil, fmt.Errorf("public witness extraction failed: %w", err)
	}

	return &Proof{
		Expression:  e.String(),
		Output:      output,
		Constraints: cc.Constraints,
		proof:       proof,
		vk:          cc.VerifyingKey,
		public:      public,
	}, nil
}

// Verify checks the proof against its public output.
func (p *Prover) Verify(proof *Proof) error {
	return groth16.Verify(proof.proof, proof.vk, proof.public)
}
