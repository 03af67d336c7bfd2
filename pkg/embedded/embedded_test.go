package embedded

import (
	"io"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/effects.yaml": &fstest.MapFile{Data: []byte("host: {}\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Reset()
	defer Reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时读取文件
func TestReadFileNotInitialized(t *testing.T) {
	Reset()

	if _, err := ReadFile("data/effects.yaml"); err == nil {
		t.Error("Expected error when not initialized")
	}
	if Exists("data/effects.yaml") {
		t.Error("Exists should be false when not initialized")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Reset()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain", "data/effects.yaml", false},
		{"dot prefix", "./data/effects.yaml", false},
		{"missing", "data/missing.yaml", true},
		{"bad prefix", "assets/effects.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "host: {}\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/effects.yaml") {
		t.Error("Exists(data/effects.yaml) = false, want true")
	}
}

// TestOpen 测试打开文件并读取内容，以及路径校验
func TestOpen(t *testing.T) {
	Init(testFS())
	defer Reset()

	f, err := Open("./data/effects.yaml")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read opened file: %v", err)
	}
	if string(data) != "host: {}\n" {
		t.Errorf("Open content = %q", data)
	}
	info, err := f.Stat()
	if err != nil || info.Size() != int64(len(data)) {
		t.Errorf("Stat() = %v, %v", info, err)
	}

	if _, err := Open("assets/effects.yaml"); err == nil {
		t.Error("Open should reject paths outside data/")
	}
	if _, err := Open("data/missing.yaml"); err == nil {
		t.Error("Open should fail for a missing file")
	}
}
