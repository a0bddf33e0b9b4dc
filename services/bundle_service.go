package services

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BundleTimeout bounds combined-PDF and ZIP generation. Merging many
// scanned documents is a slow batch operation, so it gets a budget well
// beyond ordinary request handling.
const BundleTimeout = 2 * time.Minute

// BundleFile is one stored document going into a generated bundle.
type BundleFile struct {
	Name string
	Path string
}

// HostedFile describes a bundle persisted under the public bundle
// directory instead of being streamed back inline.
type HostedFile struct {
	URL         string `json:"url"`
	FileName    string `json:"file_name"`
	StorageType string `json:"storage_type"`
}

// BuildDocumentsZip packs the given stored files into a single ZIP
// archive. Duplicate entry names get a numeric suffix.
func BuildDocumentsZip(files []BundleFile) ([]byte, error) {
	var buffer bytes.Buffer
	zipWriter := zip.NewWriter(&buffer)

	used := make(map[string]int)
	for _, file := range files {
		base := filepath.Base(file.Name)
		if base == "" || base == "." {
			base = filepath.Base(file.Path)
		}
		name := base
		if n := used[base]; n > 0 {
			ext := filepath.Ext(base)
			name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), n+1, ext)
		}
		used[base]++

		entry, err := zipWriter.Create(name)
		if err != nil {
			zipWriter.Close()
			return nil, fmt.Errorf("failed to create zip entry %s: %w", name, err)
		}
		src, err := os.Open(file.Path)
		if err != nil {
			zipWriter.Close()
			return nil, fmt.Errorf("failed to read document %s: %w", file.Name, err)
		}
		_, err = io.Copy(entry, src)
		src.Close()
		if err != nil {
			zipWriter.Close()
			return nil, fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}
	return buffer.Bytes(), nil
}

// MergePDFs combines the given PDF files into one document using an
// external merge tool: ghostscript first, pdfunite as fallback.
func MergePDFs(ctx context.Context, files []BundleFile) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "bundle-merge-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	inputs := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file.Path); err != nil {
			return nil, fmt.Errorf("document %s is not readable: %w", file.Name, err)
		}
		inputs = append(inputs, file.Path)
	}
	outputPath := filepath.Join(tmpDir, "merged.pdf")

	var attempts []string
	if gsBinary, err := exec.LookPath("gs"); err == nil {
		if err := mergeWithGhostscript(ctx, gsBinary, inputs, outputPath); err == nil {
			return os.ReadFile(outputPath)
		} else {
			attempts = append(attempts, fmt.Sprintf("gs: %v", err))
		}
	}
	if uniteBinary, err := exec.LookPath("pdfunite"); err == nil {
		if err := mergeWithPdfunite(ctx, uniteBinary, inputs, outputPath); err == nil {
			return os.ReadFile(outputPath)
		} else {
			attempts = append(attempts, fmt.Sprintf("pdfunite: %v", err))
		}
	}

	if len(attempts) == 0 {
		return nil, fmt.Errorf("failed to merge pdf files: no merge tool available")
	}
	return nil, fmt.Errorf("failed to merge pdf files: %s", strings.Join(attempts, "; "))
}

func mergeWithGhostscript(ctx context.Context, gsBinary string, inputs []string, outputPath string) error {
	args := []string{"-dBATCH", "-dNOPAUSE", "-q", "-sDEVICE=pdfwrite", "-sOutputFile=" + outputPath}
	args = append(args, inputs...)
	cmd := exec.CommandContext(ctx, gsBinary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%v: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func mergeWithPdfunite(ctx context.Context, uniteBinary string, inputs []string, outputPath string) error {
	args := append(append([]string{}, inputs...), outputPath)
	cmd := exec.CommandContext(ctx, uniteBinary, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%v: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// StoreBundle persists a generated bundle under the public bundle
// directory when hosted delivery is configured (BUNDLE_PUBLIC_URL set).
// It returns nil when the caller should stream the bytes inline instead.
func StoreBundle(data []byte, fileName string) (*HostedFile, error) {
	baseURL := strings.TrimRight(os.Getenv("BUNDLE_PUBLIC_URL"), "/")
	if baseURL == "" {
		return nil, nil
	}

	bundleDir := os.Getenv("BUNDLE_DIR")
	if bundleDir == "" {
		bundleDir = filepath.Join("uploads", "bundles")
	}
	if err := os.MkdirAll(bundleDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create bundle directory: %w", err)
	}

	stored := fmt.Sprintf("%s_%s", uuid.New().String(), fileName)
	if err := os.WriteFile(filepath.Join(bundleDir, stored), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store bundle: %w", err)
	}

	return &HostedFile{
		URL:         baseURL + "/" + stored,
		FileName:    fileName,
		StorageType: "hosted",
	}, nil
}
