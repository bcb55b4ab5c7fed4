// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import "github.com/meowcoin-foundation/mewcd/infrastructure/logger"

var log = logger.RegisterSubSystem(logger.SubsystemTags.MINR)
