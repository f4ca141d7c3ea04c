/*
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

// Package ionpath implements IonPath, a path-query language for the Ion
// data model. It parses path expressions (with their embedded scalar
// literal grammar) into an immutable Path, and evaluates a Path against
// a tree of Element values to select a sequence of matching nodes, the
// way an XPath expression selects nodes from an XML document.
//
// The package never reads or writes Ion itself; it consumes data through
// the narrow Element interface. Package iondom, in the ion-path/iondom
// subdirectory, supplies a concrete implementation of that interface
// backed by github.com/amazon-ion/ion-go.
package ionpath
