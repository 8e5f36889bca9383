// Package ring implements a fixed-capacity circular buffer that stores
// elements by value.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Elements are copied in on Push and copied out on Pop; no reference into
// ring-owned storage is handed to callers. One slot is always left unused so
// that head == tail means empty, which makes the usable capacity
// Capacity()-1. Push on a full ring evicts the oldest element.
//
// Stores are not synchronised. Callers sharing one instance across
// goroutines must serialise every call, Destroy included.
package ring
