package commands

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	vaultUseCase "github.com/AnakAmira/amira-vault/internal/vault/usecase"
)

// checksumWorkers bounds concurrent file reads.
const checksumWorkers = 4

// RunChecksum computes hex-encoded SHA-256 digests for the given files
// concurrently and prints them in "digest  path" format. Fails if any file
// cannot be read.
func RunChecksum(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	io IOTuple,
	paths []string,
) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files to checksum")
	}

	checksums := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(checksumWorkers)

	for i, path := range paths {
		g.Go(func() error {
			checksum, err := useCase.ChecksumFile(gctx, path)
			if err != nil {
				return fmt.Errorf("failed to checksum %s: %w", path, err)
			}
			checksums[i] = checksum
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Print in input order once all digests are computed
	for i, path := range paths {
		fmt.Fprintf(io.Writer, "%s  %s\n", checksums[i], path)
	}

	return nil
}

// RunVerifyFile checks a file against an expected SHA-256 digest.
// Returns an error when the digests do not match, so the command exits non-zero.
func RunVerifyFile(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	io IOTuple,
	path string,
	expectedChecksum string,
) error {
	match, err := useCase.VerifyFileIntegrity(ctx, path, expectedChecksum)
	if err != nil {
		return fmt.Errorf("failed to verify file: %w", err)
	}

	if !match {
		return fmt.Errorf("checksum mismatch for %s", path)
	}

	fmt.Fprintf(io.Writer, "ok: %s\n", path)
	return nil
}
