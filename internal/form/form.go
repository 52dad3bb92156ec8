/*

Package form contains request forms for updating and querying mask records.

Additional information can be found in our Developer Guide:

https://github.com/facemask/facemask/wiki

*/
package form
