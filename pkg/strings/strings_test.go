package strings

import (
	"strings"
	"testing"
)

func TestBytesToString(t *testing.T) {
	b := []byte("hello world")
	s := BytesToString(b)

	if s != "hello world" {
		t.Errorf("expected 'hello world', got '%s'", s)
	}

	empty := BytesToString([]byte{})
	if empty != "" {
		t.Errorf("expected empty string, got '%s'", empty)
	}
}

func TestStringToBytes(t *testing.T) {
	s := "hello world"
	b := StringToBytes(s)

	if string(b) != "hello world" {
		t.Errorf("expected 'hello world', got '%s'", string(b))
	}

	empty := StringToBytes("")
	if empty != nil {
		t.Errorf("expected nil slice, got %v", empty)
	}
}

func TestBuilder(t *testing.T) {
	builder := NewBuilder(32)

	builder.WriteString("hello")
	builder.WriteByte(' ')
	builder.WriteString("world")

	result := builder.String()
	if result != "hello world" {
		t.Errorf("expected 'hello world', got '%s'", result)
	}

	if builder.Len() != 11 {
		t.Errorf("expected length 11, got %d", builder.Len())
	}
}

func TestBuilderGrow(t *testing.T) {
	builder := NewBuilder(2)
	initialCap := builder.Cap()

	builder.Grow(10)
	if builder.Cap() <= initialCap {
		t.Errorf("expected capacity to grow, initial: %d, after: %d", initialCap, builder.Cap())
	}
}

func TestBuilderReset(t *testing.T) {
	builder := NewBuilder(32)
	builder.WriteString("test")

	if builder.Len() != 4 {
		t.Errorf("expected length 4, got %d", builder.Len())
	}

	builder.Reset()
	if builder.Len() != 0 {
		t.Errorf("expected length 0 after reset, got %d", builder.Len())
	}
}

func TestPooledBuilders(t *testing.T) {
	builder := GetBuilder(Small)
	if builder == nil {
		t.Fatal("expected non-nil builder from pool")
	}

	builder.WriteString("test")
	if builder.String() != "test" {
		t.Errorf("expected 'test', got '%s'", builder.String())
	}

	PutBuilder(builder, Small)

	builder2 := GetBuilder(Small)
	if builder2.Len() != 0 {
		t.Errorf("expected reset builder, got length %d", builder2.Len())
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		s, substr string
		expected  bool
	}{
		{"hello world", "world", true},
		{"hello world", "foo", false},
		{"hello world", "", true},
		{"", "foo", false},
		{"hello", "hello world", false},
	}

	for _, test := range tests {
		result := Contains(test.s, test.substr)
		if result != test.expected {
			t.Errorf("Contains(%q, %q) = %v, expected %v", test.s, test.substr, result, test.expected)
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		s, substr string
		expected  int
	}{
		{"hello world", "world", 6},
		{"hello world", "hello", 0},
		{"hello world", "foo", -1},
		{"hello world", "", 0},
		{"abcabc", "abc", 0},
	}

	for _, test := range tests {
		result := Index(test.s, test.substr)
		if result != test.expected {
			t.Errorf("Index(%q, %q) = %d, expected %d", test.s, test.substr, result, test.expected)
		}
	}
}

func TestTrimSpace(t *testing.T) {
	tests := []struct {
		input, expected string
	}{
		{"  hello  ", "hello"},
		{"\t\nworld\r\n", "world"},
		{"no-trim", "no-trim"},
		{"   ", ""},
		{"", ""},
	}

	for _, test := range tests {
		result := TrimSpace(test.input)
		if result != test.expected {
			t.Errorf("TrimSpace(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSplit(t *testing.T) {
	result := Split("a,b,c", ",")
	if len(result) != 3 || result[0] != "a" || result[1] != "b" || result[2] != "c" {
		t.Errorf("Split failed: %v", result)
	}

	single := Split("abc", ",")
	if len(single) != 1 || single[0] != "abc" {
		t.Errorf("Split without delimiter failed: %v", single)
	}
}

func TestJoin(t *testing.T) {
	result := Join([]string{"a", "b", "c"}, ",")
	if result != "a,b,c" {
		t.Errorf("expected 'a,b,c', got '%s'", result)
	}

	if Join(nil, ",") != "" {
		t.Error("expected empty string for nil input")
	}

	if Join([]string{"only"}, ",") != "only" {
		t.Error("expected single element unchanged")
	}
}

func TestConcat(t *testing.T) {
	result := Concat("foo", "bar", "baz")
	if result != "foobarbaz" {
		t.Errorf("expected 'foobarbaz', got '%s'", result)
	}
}

func TestSprintf(t *testing.T) {
	result := Sprintf("%s=%d", "count", 42)
	if result != "count=42" {
		t.Errorf("expected 'count=42', got '%s'", result)
	}

	noArgs := Sprintf("plain")
	if noArgs != "plain" {
		t.Errorf("expected 'plain', got '%s'", noArgs)
	}
}

func TestClone(t *testing.T) {
	original := strings.Repeat("x", 100)
	cloned := Clone(original)

	if cloned != original {
		t.Error("clone should equal original")
	}
}
