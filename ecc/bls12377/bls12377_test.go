package bls12377

import (
	"math/big"
	"testing"
)

func TestG1GeneratorOnCurve(t *testing.T) {
	if !IsOnG1Curve(G1Generator()) {
		t.Fatal("G1 generator fails curve equation")
	}
}

func TestG2GeneratorOnCurve(t *testing.T) {
	if !IsOnG2Curve(G2Generator()) {
		t.Fatal("G2 generator fails curve equation")
	}
}

func TestG1DoubleMatchesAdd(t *testing.T) {
	g := G1Generator()
	doubled := g.Double()
	added := g.Add(g)
	if !doubled.Equal(added) {
		t.Fatal("G1 double(g) != g+g")
	}
}

func TestG1ScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := G1Generator()
	acc := G1Infinity()
	for i := 0; i < 9; i++ {
		acc = acc.Add(g)
	}
	got := g.ScalarMul(big.NewInt(9).Bytes())
	if !got.Equal(acc) {
		t.Fatal("9*g via ScalarMul != g added 9 times")
	}
}

func TestReducedPairingDeterministic(t *testing.T) {
	f1, err := ReducedPairing(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("reduced pairing: %v", err)
	}
	f2, err := ReducedPairing(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("reduced pairing: %v", err)
	}
	if !f1.Equal(f2) {
		t.Fatal("reduced_pairing is not deterministic")
	}
	if f1.IsOne() {
		t.Fatal("reduced_pairing(g1,g2) must not be the identity")
	}
}

// TestReducedPairingOrderR checks e(g1,g2)^r == 1, the defining
// non-degeneracy law of GT as the order-r subgroup of Fp12^x.
func TestReducedPairingOrderR(t *testing.T) {
	f, err := ReducedPairing(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("reduced pairing: %v", err)
	}
	if !f.Pow(ScalarField.Modulus).IsOne() {
		t.Fatal("reduced_pairing(g1,g2)^r != 1")
	}
}

func TestReducedPairingBilinear(t *testing.T) {
	a := big.NewInt(17)
	b := big.NewInt(23)

	aG1 := G1Generator().ScalarMul(a.Bytes())
	bG2 := G2Generator().ScalarMul(b.Bytes())

	lhs, err := ReducedPairing(aG1, bG2)
	if err != nil {
		t.Fatalf("reduced pairing: %v", err)
	}

	base, err := ReducedPairing(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("reduced pairing: %v", err)
	}

	ab := new(big.Int).Mul(a, b)
	ab.Mod(ab, ScalarField.Modulus)
	rhs := base.CyclotomicExp(ab.Bytes())

	if !lhs.Equal(rhs) {
		t.Fatal("reduced_pairing(a*g1, b*g2) != reduced_pairing(g1,g2)^(a*b)")
	}
}

func TestFinalExponentiationIdempotent(t *testing.T) {
	f, err := Pairing(G1Generator(), G2Generator())
	if err != nil {
		t.Fatalf("pairing: %v", err)
	}
	once := FinalExponentiation(f)
	twice := FinalExponentiation(once)
	if !once.Equal(twice) {
		t.Fatal("final_exponentiation is not idempotent on its own image")
	}
}

func TestDoubleMillerLoopMatchesTwoSingleLoops(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	a := big.NewInt(3)
	b := big.NewInt(5)
	p1 := g1.ScalarMul(a.Bytes())
	p2 := g1.ScalarMul(b.Bytes())

	precP1, err := PrecomputeG1(p1)
	if err != nil {
		t.Fatalf("precompute_g1: %v", err)
	}
	precP2, err := PrecomputeG1(p2)
	if err != nil {
		t.Fatalf("precompute_g1: %v", err)
	}
	precQ, err := PrecomputeG2(g2)
	if err != nil {
		t.Fatalf("precompute_g2: %v", err)
	}

	m1, err := MillerLoop(precP1, precQ)
	if err != nil {
		t.Fatalf("miller_loop: %v", err)
	}
	m2, err := MillerLoop(precP2, precQ)
	if err != nil {
		t.Fatalf("miller_loop: %v", err)
	}
	want := m1.Mul(m2)

	got, err := DoubleMillerLoop(precP1, precQ, precP2, precQ)
	if err != nil {
		t.Fatalf("double_miller_loop: %v", err)
	}

	if !got.Equal(want) {
		t.Fatal("double_miller_loop(P1,Q,P2,Q) != miller_loop(P1,Q)*miller_loop(P2,Q)")
	}
}
