/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/massung/CHIP-8/internal/present"
)

// captureOutput redirects stdout and stderr into the on-screen log. The
// returned function puts them back.
func captureOutput(screenLog *present.Logger) (func(), error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating log pipe: %w", err)
	}

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = w, w

	done := make(chan struct{})

	go func() {
		defer close(done)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			screenLog.Log(scanner.Text())
		}
	}()

	return func() {
		os.Stdout, os.Stderr = stdout, stderr

		_ = w.Close()
		<-done
		_ = r.Close()
	}, nil
}
