package hashtocurve

import (
	"math/big"
	"testing"

	"github.com/nilfoundation/algebra/ecc/bls12381"
)

func TestExpandMessageXMD(t *testing.T) {
	dst := []byte("QUUX-V01-CS02-with-expander-SHA256-128")
	msg := []byte("abc")

	out, err := ExpandMessageXMD(msg, dst, 32)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 32 {
		t.Fatalf("expected 32 bytes, got %d", len(out))
	}

	out128, err := ExpandMessageXMD(msg, dst, 128)
	if err != nil {
		t.Fatal(err)
	}
	if len(out128) != 128 {
		t.Fatalf("expected 128 bytes, got %d", len(out128))
	}

	out2, _ := ExpandMessageXMD(msg, dst, 32)
	for i := range out {
		if out[i] != out2[i] {
			t.Fatalf("non-deterministic at byte %d", i)
		}
	}

	outDiff, _ := ExpandMessageXMD([]byte("def"), dst, 32)
	same := true
	for i := range out {
		if out[i] != outDiff[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different messages produced same expansion")
	}
}

func TestExpandMessageXMDLongDST(t *testing.T) {
	dst := make([]byte, 256)
	_, err := ExpandMessageXMD([]byte("test"), dst, 32)
	if err == nil {
		t.Fatal("expected error for DST > 255 bytes")
	}
}

func TestExpandMessageXMDVaryLength(t *testing.T) {
	dst := []byte("test-lengths")
	msg := []byte("fixed message")

	out32, _ := ExpandMessageXMD(msg, dst, 32)
	out48, _ := ExpandMessageXMD(msg, dst, 48)

	same := true
	for i := 0; i < 32; i++ {
		if out32[i] != out48[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different output lengths produced same prefix")
	}
}

func TestHashToFieldDeterministicAndRange(t *testing.T) {
	dst := []byte("BLS12381G1_XMD:SHA-256_SSWU_RO_")
	msg := []byte("test message")

	us, err := HashToField(msg, dst, bls12381.Base.Modulus, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(us) != 2 {
		t.Fatalf("expected 2 field elements, got %d", len(us))
	}
	for i, u := range us {
		if u.Cmp(bls12381.Base.Modulus) >= 0 {
			t.Fatalf("u%d >= p", i)
		}
	}

	us2, _ := HashToField(msg, dst, bls12381.Base.Modulus, 2)
	if us[0].Cmp(us2[0]) != 0 || us[1].Cmp(us2[1]) != 0 {
		t.Fatal("non-deterministic hash_to_field")
	}
}

func TestHashToFieldDifferentInputs(t *testing.T) {
	dst := []byte("test")
	a, _ := HashToField([]byte("msg1"), dst, bls12381.Base.Modulus, 2)
	b, _ := HashToField([]byte("msg2"), dst, bls12381.Base.Modulus, 2)
	if a[0].Cmp(b[0]) == 0 && a[1].Cmp(b[1]) == 0 {
		t.Fatal("different messages produced same field elements")
	}
}

func TestSimplifiedSWU(t *testing.T) {
	inputs := []*big.Int{big.NewInt(1), big.NewInt(42), big.NewInt(12345678)}
	for i, v := range inputs {
		u := bls12381.Base.FromBigInt(v)
		x, y := SimplifiedSWU(u)
		if !IsOnIsogenousCurve(x, y) {
			t.Errorf("test %d: SimplifiedSWU produced off-curve point on E'", i)
		}
	}
}

func TestSimplifiedSWUSignAlignment(t *testing.T) {
	u := bls12381.Base.FromUint64(3)
	_, y := SimplifiedSWU(u)
	if u.Sgn0() != y.Sgn0() {
		t.Fatal("sign alignment failed")
	}
}

func TestHashToG1Basic(t *testing.T) {
	dst := []byte("BLS12381G1_XMD:SHA-256_SSWU_RO_")
	msg := []byte("hello world")

	p, err := HashToG1(msg, dst)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() && !bls12381.IsOnG1Curve(p) {
		t.Fatal("HashToG1 produced off-curve point")
	}
}

func TestHashToG1Deterministic(t *testing.T) {
	dst := []byte("test-suite")
	msg := []byte("deterministic check")

	p1, err := HashToG1(msg, dst)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := HashToG1(msg, dst)
	if err != nil {
		t.Fatal(err)
	}
	if !p1.Equal(p2) {
		t.Fatal("HashToG1 is non-deterministic")
	}
}

func TestHashToG1DifferentMsgs(t *testing.T) {
	dst := []byte("collision-test")
	p1, _ := HashToG1([]byte("msg1"), dst)
	p2, _ := HashToG1([]byte("msg2"), dst)
	if p1.Equal(p2) {
		t.Fatal("different messages produced same point")
	}
}

func TestHashToG1DifferentDSTs(t *testing.T) {
	msg := []byte("same message")
	p1, _ := HashToG1(msg, []byte("DST-A"))
	p2, _ := HashToG1(msg, []byte("DST-B"))
	if p1.Equal(p2) {
		t.Fatal("different DSTs produced same point")
	}
}

func TestEncodeToG1(t *testing.T) {
	dst := []byte("BLS12381G1_XMD:SHA-256_SSWU_NU_")
	msg := []byte("encode test")

	p, err := EncodeToG1(msg, dst)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsInfinity() && !bls12381.IsOnG1Curve(p) {
		t.Fatal("EncodeToG1 produced off-curve point")
	}
}

func TestHashToG1DSTTooLong(t *testing.T) {
	longDST := make([]byte, 256)
	_, err := HashToG1([]byte("test"), longDST)
	if err == nil {
		t.Fatal("expected error for DST > 255 bytes")
	}
}

func TestClearCofactorG1(t *testing.T) {
	gen := bls12381.G1Generator()
	cleared := ClearCofactorG1(gen)
	if cleared.IsInfinity() {
		t.Fatal("clearing the cofactor of the generator should not yield infinity")
	}
	if !bls12381.IsOnG1Curve(cleared) {
		t.Fatal("ClearCofactorG1 result not on curve")
	}
}

func TestValidateDST(t *testing.T) {
	if err := ValidateDST([]byte("ok")); err != nil {
		t.Fatal("valid DST rejected:", err)
	}
	if err := ValidateDST([]byte{}); err == nil {
		t.Fatal("empty DST accepted")
	}
	if err := ValidateDST(make([]byte, 256)); err == nil {
		t.Fatal("DST > 255 accepted")
	}
	if err := ValidateDST(make([]byte, 255)); err != nil {
		t.Fatal("DST of exactly 255 bytes rejected:", err)
	}
}

func TestExpandMessageXMDMultipleLengths(t *testing.T) {
	dst := []byte("multi-len-test")
	msg := []byte("test")

	for _, length := range []int{16, 32, 48, 64, 96, 128} {
		out, err := ExpandMessageXMD(msg, dst, length)
		if err != nil {
			t.Fatalf("length %d: %v", length, err)
		}
		if len(out) != length {
			t.Fatalf("length %d: got %d bytes", length, len(out))
		}
	}
}

func TestHashToG1SubgroupMultiple(t *testing.T) {
	dst := []byte("subgroup-test-suite")
	messages := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, msg := range messages {
		p, err := HashToG1([]byte(msg), dst)
		if err != nil {
			t.Fatalf("HashToG1(%q): %v", msg, err)
		}
		if !p.IsInfinity() && !bls12381.IsOnG1Curve(p) {
			t.Fatalf("HashToG1(%q): result not on curve", msg)
		}
	}
}
