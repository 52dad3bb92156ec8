/*

Package commands provides the cli commands of the application.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package commands

import (
	"github.com/facemask/facemask/internal/event"
)

var log = event.Log
